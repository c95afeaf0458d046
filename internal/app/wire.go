package app

import (
	"go.uber.org/zap"

	"seedhunt/internal/audit"
	"seedhunt/internal/config"
	"seedhunt/internal/domain"
	"seedhunt/internal/permute"
	"seedhunt/internal/search"
	mnemonicsvc "seedhunt/internal/services/mnemonic"
	walletsvc "seedhunt/internal/services/wallet"
	wordlistsvc "seedhunt/internal/services/wordlist"
)

// Config holds runtime wiring options for building one search run.
type Config struct {
	Wallet   *config.Wallet
	AuditDir string      // directory for the CSV audit trail
	Workers  int         // parallel evaluation workers; <2 means sequential
	Logger   *zap.Logger // optional; defaults to a no-op logger
}

// Wire bundles the dependency graph for one search run. Close releases
// the audit streams and must be called on every exit path.
type Wire struct {
	Words    domain.WordList
	Checksum domain.ChecksumValidator
	Deriver  domain.AddressDeriver
	Audit    domain.AuditSink
	Searcher *search.Searcher
}

// NewWire validates the wallet entry and constructs the run's object
// graph: word list, checksum validator, deriver, audit sink, generator,
// matcher, pipeline, and orchestrator.
func NewWire(cfg Config) (*Wire, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	words := wordlistsvc.New()
	if err := cfg.Wallet.Validate(words); err != nil {
		return nil, err
	}

	hint, err := cfg.Wallet.Hint()
	if err != nil {
		return nil, err
	}
	paths := domain.PathsWithHint(hint)
	if hint != nil {
		logger.Info("derivation path hint prioritized", zap.String("path", hint.String()))
	}

	var gen *permute.Generator
	switch cfg.Wallet.Mode() {
	case config.ModeBlank:
		gen, err = permute.NewBlankSubstitution(
			cfg.Wallet.ScrambledWords, cfg.Wallet.ReplacementPool, logger)
	default:
		gen, err = permute.NewDirect(cfg.Wallet.PermutableWords, logger)
	}
	if err != nil {
		return nil, err
	}

	sink, err := audit.NewCSVSink(cfg.AuditDir)
	if err != nil {
		return nil, err
	}

	checksum := mnemonicsvc.New()
	deriver := walletsvc.New()
	matcher := search.NewMatcher(deriver, sink, paths, cfg.Wallet.TargetAddress, logger)
	pipeline := search.NewPipeline(words, checksum, sink, matcher, cfg.Wallet.FixedWords, logger)

	return &Wire{
		Words:    words,
		Checksum: checksum,
		Deriver:  deriver,
		Audit:    sink,
		Searcher: search.New(gen, pipeline, logger, search.WithWorkers(cfg.Workers)),
	}, nil
}

// Close releases the audit streams.
func (w *Wire) Close() error {
	return w.Audit.Close()
}
