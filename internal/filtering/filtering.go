// Package filtering narrows a list of job postings down to the ones worth applying to.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/batch"
	"github.com/spigell/jobfit/internal/model"
)

// Filter represents a single filtering step applied to jobs.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, jobs *model.Jobs) (*model.Jobs, Step, error)
}

// ResultStore persists scoring outcomes between runs.
type ResultStore interface {
	ScoredJobIDs(ctx context.Context) ([]string, error)
	SaveResult(ctx context.Context, runID, jobID string, result *model.MatchResult) error
	UpdateStatus(ctx context.Context, jobID, status string) error
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger  *zap.Logger
	Scorer  batch.Scorer
	Profile *model.ProfileData
	// Store is optional. Without it scored history is empty and results are not persisted.
	Store ResultStore
	RunID string
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	ExcludedCompanies []string
	ExcludeFile       string
	Rescore           bool
	MinimumScore      int
	Batch             batch.Options
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

type statusProvider interface {
	Status() Status
}

// Steps returns the standard filter chain in execution order.
func Steps() []Filter {
	return []Filter{
		NewExcludedCompanies(),
		NewExcludeFile(),
		NewScoredHistory(),
		NewFit(),
	}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the filters sequentially and returns the remaining jobs together
// with every match result produced on the way, keyed by job id.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, jobs *model.Jobs) (*model.Jobs, map[string]*model.MatchResult, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	results := make(map[string]*model.MatchResult)
	for _, step := range steps {
		if !step.IsEnabled() {
			deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, deps, jobs)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		deps.Logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		jobs = next

		if collector, ok := step.(interface {
			Results() map[string]*model.MatchResult
		}); ok {
			for id, result := range collector.Results() {
				results[id] = result
			}
		}
	}

	return jobs, results, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}
		statuses = append(statuses, Status{Name: step.Name(), Enabled: step.IsEnabled()})
	}
	return statuses
}
