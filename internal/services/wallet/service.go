package wallet

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"seedhunt/internal/domain"
)

// Service derives Ethereum addresses from mnemonics. Stateless and safe
// for concurrent use.
type Service struct{}

// New returns an Ethereum HD address deriver.
func New() *Service { return &Service{} }

// Derive walks path from the master key of the mnemonic's seed and returns
// the address of the resulting private key as lowercase hex. A non-nil
// error means this path could not be derived for this mnemonic; a wrong
// address is not an error.
func (s *Service) Derive(mnemonic string, path domain.DerivationPath) (string, error) {
	seed := bip39.NewSeed(mnemonic, "")
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return "", fmt.Errorf("master key: %w", err)
	}
	for _, seg := range path.Segments {
		index := seg.Index
		if seg.Hardened {
			index += bip32.FirstHardenedChild
		}
		key, err = key.NewChildKey(index)
		if err != nil {
			return "", fmt.Errorf("derive %s: %w", path, err)
		}
	}
	priv, err := crypto.ToECDSA(key.Key)
	if err != nil {
		return "", fmt.Errorf("private key for %s: %w", path, err)
	}
	addr := crypto.PubkeyToAddress(priv.PublicKey)
	return strings.ToLower(addr.Hex()), nil
}

// Compile-time assertion that Service implements domain.AddressDeriver.
var _ domain.AddressDeriver = (*Service)(nil)
