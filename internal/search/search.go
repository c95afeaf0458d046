package search

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seedhunt/internal/domain"
	"seedhunt/internal/permute"
)

// Stats summarizes a finished run.
type Stats struct {
	Visited       int64
	ChecksumValid int64

	// LastAddress is the last successfully derived, non-matching address
	// seen across the run, for diagnostics when nothing matched.
	LastAddress string
}

// Result is the outcome of a search. On a match, Mnemonic, Path and
// Address are set; Stats is populated either way.
type Result struct {
	Found    bool
	Mnemonic string
	Path     domain.DerivationPath
	Address  string
	Stats    Stats
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithWorkers sets the number of parallel evaluation workers. Values
// below 2 keep the strictly ordered single-threaded loop.
func WithWorkers(n int) Option {
	return func(s *Searcher) { s.workers = n }
}

// Searcher owns one search run's state: the generator, the filter
// pipeline, and the progress counters. Construct a fresh one per run.
type Searcher struct {
	gen      *permute.Generator
	pipeline *Pipeline
	logger   *zap.Logger
	workers  int
	progress func(int64)
}

// New builds a searcher over a generator and pipeline.
func New(gen *permute.Generator, pipeline *Pipeline, logger *zap.Logger, opts ...Option) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Searcher{gen: gen, pipeline: pipeline, logger: logger, workers: 1}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Total returns the size of the enumeration space, for progress display.
func (s *Searcher) Total() int64 { return s.gen.Total() }

// SetProgress installs a callback invoked after every evaluated candidate
// with the running total. Must be set before Run; the callback may be
// invoked from multiple goroutines when workers > 1.
func (s *Searcher) SetProgress(fn func(visited int64)) { s.progress = fn }

// Run scans the candidate space until a match, exhaustion, or ctx
// cancellation. On exhaustion the error wraps domain.ErrNotFound and the
// returned Result still carries the run statistics.
func (s *Searcher) Run(ctx context.Context) (Result, error) {
	s.logger.Info("scanning candidate space",
		zap.Int64("total", s.gen.Total()),
		zap.Int("workers", s.workers))

	var res Result
	var err error
	if s.workers > 1 {
		res, err = s.runParallel(ctx)
	} else {
		res, err = s.runSequential(ctx)
	}
	if err != nil {
		return res, err
	}
	if !res.Found {
		s.logger.Info("candidate space exhausted",
			zap.Int64("visited", res.Stats.Visited),
			zap.Int64("checksum_valid", res.Stats.ChecksumValid),
			zap.String("last_address", res.Stats.LastAddress))
		return res, fmt.Errorf("%w: %d candidates visited, %d checksum-valid",
			domain.ErrNotFound, res.Stats.Visited, res.Stats.ChecksumValid)
	}
	s.logger.Info("match found",
		zap.Int64("visited", res.Stats.Visited),
		zap.String("path", res.Path.String()),
		zap.String("address", res.Address))
	return res, nil
}

func (s *Searcher) runSequential(ctx context.Context) (Result, error) {
	var res Result
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		c, ok := s.gen.Next()
		if !ok {
			return res, nil
		}
		ev, err := s.pipeline.Evaluate(c)
		if err != nil {
			return res, err
		}
		res.Stats.Visited++
		if s.progress != nil {
			s.progress(res.Stats.Visited)
		}
		switch ev.Outcome {
		case Matched:
			res.Stats.ChecksumValid++
			res.Found = true
			res.Mnemonic = ev.Mnemonic
			res.Path = ev.Match.Path
			res.Address = ev.Match.Address
			return res, nil
		case NoMatch:
			res.Stats.ChecksumValid++
			s.logger.Info("checksum-valid candidate without address match",
				zap.Int64("candidate", c.ID),
				zap.Int64("checksum_valid_total", res.Stats.ChecksumValid))
			if ev.Match.LastDerived != "" {
				res.Stats.LastAddress = ev.Match.LastDerived
			}
		}
	}
}

// runParallel fans candidates out over a worker pool. The producer owns
// the generator; a first match closes done so that no worker starts
// another candidate's cryptographic work.
func (s *Searcher) runParallel(ctx context.Context) (Result, error) {
	var (
		visited       atomic.Int64
		checksumValid atomic.Int64

		mu      sync.Mutex
		winner  *Result
		lastAdr string

		once sync.Once
		done = make(chan struct{})
	)

	candidates := make(chan domain.Candidate, s.workers*4)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(candidates)
		for {
			c, ok := s.gen.Next()
			if !ok {
				return nil
			}
			select {
			case candidates <- c:
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	for i := 0; i < s.workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-done:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				case c, ok := <-candidates:
					if !ok {
						return nil
					}
					ev, err := s.pipeline.Evaluate(c)
					if err != nil {
						return err
					}
					n := visited.Add(1)
					if s.progress != nil {
						s.progress(n)
					}
					switch ev.Outcome {
					case Matched:
						checksumValid.Add(1)
						mu.Lock()
						if winner == nil {
							winner = &Result{
								Found:    true,
								Mnemonic: ev.Mnemonic,
								Path:     ev.Match.Path,
								Address:  ev.Match.Address,
							}
						}
						mu.Unlock()
						once.Do(func() { close(done) })
						return nil
					case NoMatch:
						checksumValid.Add(1)
						if ev.Match.LastDerived != "" {
							mu.Lock()
							lastAdr = ev.Match.LastDerived
							mu.Unlock()
						}
					}
				}
			}
		})
	}

	err := g.Wait()
	stats := Stats{
		Visited:       visited.Load(),
		ChecksumValid: checksumValid.Load(),
		LastAddress:   lastAdr,
	}
	if winner != nil {
		winner.Stats = stats
		return *winner, nil
	}
	if err != nil {
		return Result{Stats: stats}, err
	}
	return Result{Stats: stats}, nil
}
