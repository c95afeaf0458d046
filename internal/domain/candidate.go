package domain

import "strings"

// Candidate is one permutation of the unknown word slots, paired with its
// zero-based position in the enumeration. Candidates are ephemeral: the
// search constructs one per iteration and does not retain it.
type Candidate struct {
	ID    int64
	Words []string
}

// Mnemonic joins the candidate's permuted words with the fixed trailing
// words into a space-separated phrase.
func (c Candidate) Mnemonic(fixed []string) string {
	all := make([]string, 0, len(c.Words)+len(fixed))
	all = append(all, c.Words...)
	all = append(all, fixed...)
	return strings.Join(all, " ")
}
