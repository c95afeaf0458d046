package wordlist

import (
	"github.com/tyler-smith/go-bip39/wordlists"

	"seedhunt/internal/domain"
)

// Service answers membership queries over the canonical 2048-word English
// list. Safe for concurrent use; the set is never mutated after New.
type Service struct {
	words map[string]struct{}
}

// New builds the membership set from the embedded English word list.
func New() *Service {
	words := make(map[string]struct{}, len(wordlists.English))
	for _, w := range wordlists.English {
		words[w] = struct{}{}
	}
	return &Service{words: words}
}

// Contains reports whether word is in the vocabulary. The word is expected
// to be normalized already; no cleanup happens here.
func (s *Service) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Compile-time assertion that Service implements domain.WordList.
var _ domain.WordList = (*Service)(nil)
