package permute

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"seedhunt/internal/domain"
)

// blankSlots is the permuted phrase prefix length in blank-substitution
// mode: eight known words plus the substituted candidate.
const blankSlots = 9

// Generator streams permutations of the unknown word slots. Not safe for
// concurrent use; the search loop pulls from a single goroutine.
type Generator struct {
	logger *zap.Logger

	current []string // word set being permuted right now
	indices []int    // permutation state over current

	base []string // blank mode: the known words, original order
	pool []string // blank mode: remaining replacement candidates

	nextID int64
	total  int64
	seen   map[[32]byte]struct{}
	fresh  bool // current indices not yet emitted
	done   bool
}

// NewDirect returns a generator over every ordering of words. Enumeration
// advances position swaps of the input sequence, so the input order itself
// is the first candidate.
func NewDirect(words []string, logger *zap.Logger) (*Generator, error) {
	if len(words) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 permutable words, got %d",
			domain.ErrValidation, len(words))
	}
	g := newGenerator(logger, factorial(len(words)))
	g.load(append([]string(nil), words...))
	return g, nil
}

// NewBlankSubstitution returns a generator that, for each pool candidate in
// order, substitutes it into the single blank slot of scrambled and yields
// every ordering of the resulting word set.
func NewBlankSubstitution(scrambled, pool []string, logger *zap.Logger) (*Generator, error) {
	if len(scrambled) != blankSlots {
		return nil, fmt.Errorf("%w: scrambled words must have length %d, got %d",
			domain.ErrValidation, blankSlots, len(scrambled))
	}
	base := make([]string, 0, blankSlots-1)
	blanks := 0
	for _, w := range scrambled {
		if w == "" {
			blanks++
			continue
		}
		base = append(base, w)
	}
	if blanks != 1 {
		return nil, fmt.Errorf("%w: scrambled words must contain exactly one blank, got %d",
			domain.ErrValidation, blanks)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: replacement pool must not be empty", domain.ErrValidation)
	}
	g := newGenerator(logger, int64(len(pool))*factorial(blankSlots))
	g.base = base
	g.pool = append([]string(nil), pool...)
	g.advancePool()
	return g, nil
}

func newGenerator(logger *zap.Logger, total int64) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		logger: logger,
		total:  total,
		seen:   make(map[[32]byte]struct{}),
	}
}

// Total returns the size of the raw enumeration space, K! or P×9!.
// Duplicate-word inputs may yield fewer candidates than Total.
func (g *Generator) Total() int64 { return g.total }

// Next yields the next candidate, or ok=false once the space is exhausted.
// IDs increase monotonically from zero; a skipped duplicate does not
// consume an id.
func (g *Generator) Next() (domain.Candidate, bool) {
	for !g.done {
		if !g.fresh && !nextPermutation(g.indices) {
			if !g.advancePool() {
				g.done = true
				break
			}
		}
		g.fresh = false

		words := make([]string, len(g.indices))
		for i, idx := range g.indices {
			words[i] = g.current[idx]
		}
		sig := blake2b.Sum256([]byte(strings.Join(words, " ")))
		if _, dup := g.seen[sig]; dup {
			g.logger.Warn("duplicate permutation skipped",
				zap.String("words", strings.Join(words, " ")))
			continue
		}
		g.seen[sig] = struct{}{}

		c := domain.Candidate{ID: g.nextID, Words: words}
		g.nextID++
		return c, true
	}
	return domain.Candidate{}, false
}

// load starts a fresh permutation cycle over words.
func (g *Generator) load(words []string) {
	g.current = words
	g.indices = make([]int, len(words))
	for i := range g.indices {
		g.indices[i] = i
	}
	g.fresh = true
}

// advancePool substitutes the next replacement candidate, if any, and
// resets the permutation state. The candidate occupies the last slot of
// the permuted set; permutation covers every position anyway.
func (g *Generator) advancePool() bool {
	if len(g.pool) == 0 {
		return false
	}
	candidate := g.pool[0]
	g.pool = g.pool[1:]
	words := make([]string, 0, len(g.base)+1)
	words = append(words, g.base...)
	words = append(words, candidate)
	g.load(words)
	return true
}

// nextPermutation advances arr to its next ordering in place, returning
// false once arr is the final (descending) one.
func nextPermutation(arr []int) bool {
	n := len(arr)
	k := n - 2
	for k >= 0 && arr[k] >= arr[k+1] {
		k--
	}
	if k < 0 {
		return false
	}
	l := n - 1
	for arr[k] >= arr[l] {
		l--
	}
	arr[k], arr[l] = arr[l], arr[k]
	for i, j := k+1, n-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
	return true
}

func factorial(n int) int64 {
	f := int64(1)
	for i := 2; i <= n; i++ {
		f *= int64(i)
	}
	return f
}
