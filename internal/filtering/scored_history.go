package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/model"
)

const rescoreMsg = "rescore requested"

type scoredHistoryFilter struct {
	disabled bool
	reason   string
	rescore  bool
}

// NewScoredHistory creates a filter that removes jobs already scored in a previous run.
func NewScoredHistory() Filter {
	return &scoredHistoryFilter{}
}

func (f *scoredHistoryFilter) Name() string { return "scored_history" }

func (f *scoredHistoryFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *scoredHistoryFilter) IsEnabled() bool { return !f.disabled }

func (f *scoredHistoryFilter) Validate(cfg *Config) error {
	f.rescore = cfg != nil && cfg.Rescore
	return nil
}

func (f *scoredHistoryFilter) Apply(ctx context.Context, deps Deps, jobs *model.Jobs) (*model.Jobs, Step, error) {
	initial := jobs.Len()
	if f.rescore {
		deps.Logger.Info("keeping already scored jobs", zap.String("reason", rescoreMsg))
		return jobs, Step{Initial: initial, Left: initial}, nil
	}
	if deps.Store == nil {
		return jobs, Step{Initial: initial, Left: initial}, nil
	}

	ids, err := deps.Store.ScoredJobIDs(ctx)
	if err != nil {
		return jobs, Step{}, fmt.Errorf("get scored jobs: %w", err)
	}

	excluded := jobs.Exclude(model.JobIDField, ids)
	if len(excluded) > 0 {
		deps.Logger.Info("excluding jobs scored in previous runs",
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", jobs.Len()),
		)
	}

	return jobs, Step{Initial: initial, Dropped: len(excluded), Left: jobs.Len()}, nil
}

func (f *scoredHistoryFilter) Status() Status {
	reason := f.reason
	if f.rescore && reason == "" {
		reason = rescoreMsg
	}
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  reason,
		Details: map[string]string{"rescore": strconv.FormatBool(f.rescore)},
	}
}
