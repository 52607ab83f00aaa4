package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/mathhammer/internal/config"
	"github.com/cory-johannsen/mathhammer/internal/game/mathhammer"
	"github.com/cory-johannsen/mathhammer/internal/observability"
)

// Result is one scored matchup.
type Result struct {
	RunID   string
	Matchup Matchup
	Damage  mathhammer.DamageResult
}

// Runner scores matchups with a bounded number of concurrent workers.
type Runner struct {
	logger        *zap.Logger
	workers       int
	distributions bool
}

// NewRunner creates a Runner from the analysis configuration.
//
// Precondition: logger must be non-nil.
// Postcondition: the returned Runner uses at least one worker.
func NewRunner(logger *zap.Logger, cfg config.AnalysisConfig) *Runner {
	return &Runner{
		logger:        logger,
		workers:       max(cfg.Workers, 1),
		distributions: cfg.Distributions,
	}
}

// Run scores every matchup. Results are returned in input order.
//
// Postcondition: len(results) == len(matchups), or a non-nil error if ctx
// was cancelled before all matchups were scored.
func (r *Runner) Run(ctx context.Context, matchups []Matchup) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(matchups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, m := range matchups {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			runID := uuid.NewString()
			results[i] = Result{
				RunID:   runID,
				Matchup: m,
				Damage:  r.score(m),
			}
			observability.WithRun(r.logger, runID).Debug("matchup scored",
				zap.String("matchup", m.Name),
				zap.String("hypothesis", m.Hypothesis),
				zap.String("weapon", m.Weapon),
				zap.Float64("expected_damage", results[i].Damage.ExpectedDamage),
				zap.Float64("models_killed", results[i].Damage.ModelsKilled),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis: run aborted: %w", err)
	}

	r.logger.Info("batch complete",
		zap.Int("matchups", len(matchups)),
		zap.Int("workers", r.workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}

func (r *Runner) score(m Matchup) mathhammer.DamageResult {
	if r.distributions {
		return mathhammer.CalculateDamageWithProbabilities(m.Attacker, m.Defender, m.Modifiers)
	}
	return mathhammer.CalculateDamage(m.Attacker, m.Defender, m.Modifiers)
}
