package permute

import (
	"errors"
	"strings"
	"testing"

	"seedhunt/internal/domain"
)

// refPermutations returns every ordering of words, recursively.
func refPermutations(words []string) [][]string {
	if len(words) <= 1 {
		return [][]string{append([]string(nil), words...)}
	}
	var out [][]string
	for i := range words {
		rest := make([]string, 0, len(words)-1)
		rest = append(rest, words[:i]...)
		rest = append(rest, words[i+1:]...)
		for _, tail := range refPermutations(rest) {
			out = append(out, append([]string{words[i]}, tail...))
		}
	}
	return out
}

func collect(t *testing.T, g *Generator) []domain.Candidate {
	t.Helper()
	var out []domain.Candidate
	for {
		c, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

func TestDirectFullSpace(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta"}
	g, err := NewDirect(words, nil)
	if err != nil {
		t.Fatalf("NewDirect: %v", err)
	}
	if g.Total() != 24 {
		t.Fatalf("Total = %d, want 24", g.Total())
	}

	got := collect(t, g)
	if len(got) != 24 {
		t.Fatalf("yielded %d candidates, want 24", len(got))
	}

	want := map[string]bool{}
	for _, p := range refPermutations(words) {
		want[strings.Join(p, " ")] = true
	}
	seen := map[string]bool{}
	for i, c := range got {
		if c.ID != int64(i) {
			t.Fatalf("candidate %d has id %d, want %d", i, c.ID, i)
		}
		key := strings.Join(c.Words, " ")
		if !want[key] {
			t.Fatalf("unexpected permutation %q", key)
		}
		if seen[key] {
			t.Fatalf("permutation %q yielded twice", key)
		}
		seen[key] = true
	}
	if len(seen) != len(want) {
		t.Fatalf("covered %d of %d permutations", len(seen), len(want))
	}

	// The input order is the first candidate.
	if strings.Join(got[0].Words, " ") != "alpha bravo charlie delta" {
		t.Fatalf("first candidate %v, want input order", got[0].Words)
	}
}

func TestDirectNotRestartable(t *testing.T) {
	g, err := NewDirect([]string{"alpha", "bravo"}, nil)
	if err != nil {
		t.Fatalf("NewDirect: %v", err)
	}
	collect(t, g)
	if _, ok := g.Next(); ok {
		t.Fatal("exhausted generator yielded another candidate")
	}
}

func TestDirectDuplicateWordsDeduplicated(t *testing.T) {
	g, err := NewDirect([]string{"echo", "echo", "echo"}, nil)
	if err != nil {
		t.Fatalf("NewDirect: %v", err)
	}
	got := collect(t, g)
	if len(got) != 1 {
		t.Fatalf("yielded %d candidates for identical words, want 1", len(got))
	}
	if got[0].ID != 0 {
		t.Fatalf("candidate id = %d, want 0", got[0].ID)
	}
}

func TestDirectRejectsTooFewWords(t *testing.T) {
	if _, err := NewDirect([]string{"solo"}, nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func blankSet() []string {
	return []string{"one", "", "two", "three", "four", "five", "six", "seven", "eight"}
}

func TestBlankSubstitutionCount(t *testing.T) {
	if testing.Short() {
		t.Skip("full 2x9! enumeration")
	}
	pool := []string{"ninth", "tenth"}
	g, err := NewBlankSubstitution(blankSet(), pool, nil)
	if err != nil {
		t.Fatalf("NewBlankSubstitution: %v", err)
	}
	const want = 2 * 362880
	if g.Total() != want {
		t.Fatalf("Total = %d, want %d", g.Total(), want)
	}
	var n int64
	var lastID int64 = -1
	for {
		c, ok := g.Next()
		if !ok {
			break
		}
		if c.ID != lastID+1 {
			t.Fatalf("id %d follows %d", c.ID, lastID)
		}
		lastID = c.ID
		n++
	}
	if n != want {
		t.Fatalf("yielded %d candidates, want %d", n, want)
	}
}

func TestBlankSubstitutionFirstCandidates(t *testing.T) {
	pool := []string{"ninth", "tenth"}
	g, err := NewBlankSubstitution(blankSet(), pool, nil)
	if err != nil {
		t.Fatalf("NewBlankSubstitution: %v", err)
	}
	c, ok := g.Next()
	if !ok {
		t.Fatal("no first candidate")
	}
	// Known words keep their original order; the first pool candidate
	// fills the final slot.
	want := "one two three four five six seven eight ninth"
	if got := strings.Join(c.Words, " "); got != want {
		t.Fatalf("first candidate %q, want %q", got, want)
	}
	if len(c.Words) != 9 {
		t.Fatalf("candidate length %d, want 9", len(c.Words))
	}
}

func TestBlankSubstitutionValidation(t *testing.T) {
	pool := []string{"ninth"}
	cases := []struct {
		name      string
		scrambled []string
		pool      []string
	}{
		{"too short", blankSet()[:8], pool},
		{"no blank", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}, pool},
		{"two blanks", []string{"a", "", "c", "d", "e", "f", "g", "", "i"}, pool},
		{"empty pool", blankSet(), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewBlankSubstitution(tc.scrambled, tc.pool, nil); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}
