package search

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"seedhunt/internal/domain"
)

// Outcome classifies one candidate's trip through the filter stages.
type Outcome int

const (
	// RejectedWordlist: a word was not in the vocabulary.
	RejectedWordlist Outcome = iota
	// RejectedChecksum: the assembled phrase failed the checksum.
	RejectedChecksum
	// NoMatch: checksum valid, but no derivation path hit the target.
	NoMatch
	// Matched: checksum valid and some path derived the target address.
	Matched
)

// Evaluation is the pipeline's verdict for one candidate.
type Evaluation struct {
	Outcome  Outcome
	Mnemonic string
	Match    MatchResult
}

// Pipeline runs a candidate through the staged validity checks, cheapest
// first: vocabulary membership, phrase assembly, checksum, then the
// multi-path address matcher. Safe for concurrent use.
type Pipeline struct {
	words    domain.WordList
	checksum domain.ChecksumValidator
	audit    domain.AuditSink
	matcher  *Matcher
	fixed    []string
	logger   *zap.Logger
}

// NewPipeline assembles the filter stages around a fixed trailing word set.
func NewPipeline(
	words domain.WordList,
	checksum domain.ChecksumValidator,
	sink domain.AuditSink,
	matcher *Matcher,
	fixed []string,
	logger *zap.Logger,
) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		words:    words,
		checksum: checksum,
		audit:    sink,
		matcher:  matcher,
		fixed:    fixed,
		logger:   logger,
	}
}

// Evaluate filters one candidate. Per-candidate rejections come back as an
// Outcome; the error return is reserved for faults that must abort the
// whole run (an invariant violation or an audit write failure).
func (p *Pipeline) Evaluate(c domain.Candidate) (Evaluation, error) {
	// Fixed words were validated at normalization time, but the permuted
	// slot varies per candidate, so the whole phrase is re-checked.
	for _, word := range c.Words {
		if !p.words.Contains(word) {
			p.logger.Debug("word not in vocabulary",
				zap.Int64("candidate", c.ID), zap.String("word", word))
			return Evaluation{Outcome: RejectedWordlist}, nil
		}
	}
	for _, word := range p.fixed {
		if !p.words.Contains(word) {
			return Evaluation{Outcome: RejectedWordlist}, nil
		}
	}

	mnemonic := c.Mnemonic(p.fixed)
	if n := len(strings.Fields(mnemonic)); n != 24 {
		return Evaluation{}, fmt.Errorf("%w: assembled phrase has %d words, want 24",
			domain.ErrValidation, n)
	}

	valid := p.checksum.Validate(mnemonic)
	if err := p.audit.Checksum(c.ID, mnemonic, valid); err != nil {
		return Evaluation{}, err
	}
	if !valid {
		p.logger.Debug("checksum invalid", zap.Int64("candidate", c.ID))
		return Evaluation{Outcome: RejectedChecksum, Mnemonic: mnemonic}, nil
	}

	match, err := p.matcher.Match(c.ID, mnemonic)
	if err != nil {
		return Evaluation{}, err
	}
	out := NoMatch
	if match.Matched {
		out = Matched
	}
	return Evaluation{Outcome: out, Mnemonic: mnemonic, Match: match}, nil
}
