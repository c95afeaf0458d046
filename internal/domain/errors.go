package domain

import "errors"

var (
	// ErrConfig marks a malformed or unsatisfiable run configuration.
	// Discovered before any candidate is generated; aborts the run.
	ErrConfig = errors.New("invalid configuration")

	// ErrValidation marks a violated generator or pipeline input contract.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when the candidate space is exhausted
	// without a matching address.
	ErrNotFound = errors.New("no matching mnemonic found")
)
