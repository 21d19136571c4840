// Package sim runs batches of goldfish games in parallel and aggregates
// their results.
package sim

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/premodern/goldfisher/internal/game"
)

var (
	// ErrNoGames is returned for batches of zero games.
	ErrNoGames = errors.New("no games to simulate")
	// ErrNoStrategy is returned when no pilot constructor is given.
	ErrNoStrategy = errors.New("no strategy constructor")
	// ErrNoDecklist is returned when no decklist is given.
	ErrNoDecklist = errors.New("no decklist")
)

// Options configure one simulation batch.
type Options struct {
	// Games is the number of games to simulate.
	Games int
	// Workers caps the number of concurrent games. Zero means one
	// worker per CPU.
	Workers int
	// Seed is the base seed; each game derives its own from it. Zero
	// seeds from the wall clock.
	Seed int64
	// Decklist is the deck every game is dealt from.
	Decklist *game.Decklist
	// NewStrategy builds one pilot per game. Pilots may carry state, so
	// they are never shared between games.
	NewStrategy func() game.Strategy
	// OnResult, when set, is called after every finished game with the
	// running completion count. Calls are serialized.
	OnResult func(done, total int, result game.Result)
}

// Runner simulates a batch of games with a worker pool.
type Runner struct {
	opts Options
	log  *zap.Logger
}

// NewRunner validates the options and builds a runner.
func NewRunner(opts Options, log *zap.Logger) (*Runner, error) {
	if opts.Games <= 0 {
		return nil, ErrNoGames
	}
	if opts.NewStrategy == nil {
		return nil, ErrNoStrategy
	}
	if opts.Decklist == nil {
		return nil, ErrNoDecklist
	}
	// Every game would fail on an unknown card, so reject it up front.
	for _, entry := range opts.Decklist.Maindeck {
		if _, err := game.NewCard(entry.Name); err != nil {
			return nil, fmt.Errorf("maindeck: %w", err)
		}
	}
	for _, entry := range opts.Decklist.Sideboard {
		if _, err := game.NewCard(entry.Name); err != nil {
			return nil, fmt.Errorf("sideboard: %w", err)
		}
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{opts: opts, log: log}, nil
}

// Run simulates the batch and returns the aggregated report. A
// cancelled context stops dispatching new games; games already in
// flight still finish and count.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	batchID := uuid.NewString()
	r.log.Info("starting simulation batch",
		zap.String("batch_id", batchID),
		zap.Int("games", r.opts.Games),
		zap.Int("workers", r.opts.Workers),
		zap.Int64("seed", r.opts.Seed),
	)

	jobs := make(chan int64)
	results := make(chan game.Result)

	var wg sync.WaitGroup
	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				result, err := r.playOne(seed)
				if err != nil {
					r.log.Error("game setup failed", zap.Error(err))
					continue
				}
				results <- result
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < r.opts.Games; i++ {
			select {
			case jobs <- r.opts.Seed + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	report := NewReport(batchID)
	for result := range results {
		report.Add(result)
		if r.opts.OnResult != nil {
			r.opts.OnResult(report.Games, r.opts.Games, result)
		}
	}

	r.log.Info("simulation batch finished",
		zap.String("batch_id", batchID),
		zap.Int("games", report.Games),
		zap.Int("wins", report.Wins),
	)

	if err := ctx.Err(); err != nil && report.Games < r.opts.Games {
		return report, fmt.Errorf("batch cancelled after %d games: %w", report.Games, err)
	}
	return report, nil
}

func (r *Runner) playOne(seed int64) (game.Result, error) {
	g, err := game.New(r.opts.Decklist, seed, r.log)
	if err != nil {
		return game.Result{}, err
	}
	return g.Run(r.opts.NewStrategy()), nil
}
