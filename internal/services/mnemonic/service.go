package mnemonic

import (
	"github.com/tyler-smith/go-bip39"

	"seedhunt/internal/domain"
)

// Service validates mnemonic checksums.
type Service struct{}

// New returns a checksum validator over the BIP-39 English word list.
func New() *Service { return &Service{} }

// Validate reports whether the phrase has a valid embedded checksum.
// Malformed input (wrong word count, unknown words) yields false.
func (s *Service) Validate(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// Compile-time assertion that Service implements domain.ChecksumValidator.
var _ domain.ChecksumValidator = (*Service)(nil)
