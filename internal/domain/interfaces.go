package domain

// WordList answers membership queries over the canonical 2048-word
// recovery-phrase vocabulary.
type WordList interface {
	Contains(word string) bool
}

// ChecksumValidator reports whether a complete mnemonic phrase carries a
// valid embedded checksum. Implementations fail closed: malformed input
// yields false, never a panic or error.
type ChecksumValidator interface {
	Validate(mnemonic string) bool
}

// AddressDeriver derives an address from a mnemonic along a derivation
// path. A non-nil error means the path could not be derived at all, which
// is distinct from a successful derivation of a non-matching address.
type AddressDeriver interface {
	Derive(mnemonic string, path DerivationPath) (string, error)
}

// AuditSink records the append-only trail of the search: one row per
// checksum attempt and one row per successful address derivation. Writes
// must be flushed as they happen so a killed process still leaves a usable
// partial trail. A write failure is fatal to the run.
type AuditSink interface {
	Checksum(id int64, mnemonic string, valid bool) error
	Derivation(id int64, address string) error
	Close() error
}
