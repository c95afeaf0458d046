package search

import (
	"strings"

	"go.uber.org/zap"

	"seedhunt/internal/domain"
)

// MatchResult is the outcome of trying the full path list for one
// checksum-valid mnemonic.
type MatchResult struct {
	Matched bool
	Path    domain.DerivationPath
	Address string

	// LastDerived is the last successfully derived, non-matching address,
	// empty when every path failed to derive anything. Diagnostic only.
	LastDerived string
}

// Matcher tries derivation paths in priority order against the target
// address. Safe for concurrent use by multiple workers.
type Matcher struct {
	deriver domain.AddressDeriver
	audit   domain.AuditSink
	paths   []domain.DerivationPath
	target  string
	logger  *zap.Logger
}

// NewMatcher builds a matcher over the given path priority list. The
// target is compared case-insensitively.
func NewMatcher(
	deriver domain.AddressDeriver,
	sink domain.AuditSink,
	paths []domain.DerivationPath,
	target string,
	logger *zap.Logger,
) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		deriver: deriver,
		audit:   sink,
		paths:   paths,
		target:  strings.ToLower(target),
		logger:  logger,
	}
}

// Match derives mnemonic along each path in order, short-circuiting on the
// first address equal to the target. A path that fails to derive is
// skipped; it never aborts the candidate. The only error returned is an
// audit write failure, which is fatal to the run.
func (m *Matcher) Match(id int64, mnemonic string) (MatchResult, error) {
	var res MatchResult
	for _, path := range m.paths {
		addr, err := m.deriver.Derive(mnemonic, path)
		if err != nil {
			m.logger.Debug("derivation failed",
				zap.Int64("candidate", id),
				zap.String("path", path.String()),
				zap.Error(err))
			continue
		}
		if err := m.audit.Derivation(id, addr); err != nil {
			return MatchResult{}, err
		}
		if strings.EqualFold(addr, m.target) {
			res.Matched = true
			res.Path = path
			res.Address = addr
			return res, nil
		}
		res.LastDerived = addr
	}
	return res, nil
}
