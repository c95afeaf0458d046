package search

import (
	"fmt"
	"sync"
	"sync/atomic"

	"seedhunt/internal/domain"
)

// openWords accepts every word.
type openWords struct{}

func (openWords) Contains(string) bool { return true }

// setWords accepts only listed words.
type setWords map[string]bool

func (s setWords) Contains(w string) bool { return s[w] }

// fakeChecksum accepts exactly the configured phrases and counts calls.
type fakeChecksum struct {
	valid map[string]bool
	calls atomic.Int64
}

func (f *fakeChecksum) Validate(m string) bool {
	f.calls.Add(1)
	return f.valid[m]
}

// fakeDeriver returns configured addresses per (mnemonic, path) pair,
// a default address otherwise, and an error for failing paths.
type fakeDeriver struct {
	addrs       map[string]string // "<mnemonic>|<path>" -> address
	failPaths   map[string]bool   // path.String() -> derivation failure
	defaultAddr string
	calls       atomic.Int64
}

func deriveKey(mnemonic string, path domain.DerivationPath) string {
	return mnemonic + "|" + path.String()
}

func (f *fakeDeriver) Derive(mnemonic string, path domain.DerivationPath) (string, error) {
	f.calls.Add(1)
	if f.failPaths[path.String()] {
		return "", fmt.Errorf("cannot derive %s", path)
	}
	if addr, ok := f.addrs[deriveKey(mnemonic, path)]; ok {
		return addr, nil
	}
	return f.defaultAddr, nil
}

// memSink records audit rows in memory.
type memSink struct {
	mu          sync.Mutex
	checksums   []string
	derivations []string
	closed      bool
}

func (s *memSink) Checksum(id int64, mnemonic string, valid bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checksums = append(s.checksums, fmt.Sprintf("%d,%s,%t", id, mnemonic, valid))
	return nil
}

func (s *memSink) Derivation(id int64, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.derivations = append(s.derivations, fmt.Sprintf("%d,%s", id, address))
	return nil
}

func (s *memSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var (
	_ domain.WordList          = openWords{}
	_ domain.ChecksumValidator = (*fakeChecksum)(nil)
	_ domain.AddressDeriver    = (*fakeDeriver)(nil)
	_ domain.AuditSink         = (*memSink)(nil)
)
