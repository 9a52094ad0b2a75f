package filtering

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/batch"
	"github.com/spigell/jobfit/internal/logger"
	"github.com/spigell/jobfit/internal/model"
)

type fitFilter struct {
	disabled     bool
	reason       string
	minimumScore int
	excludeFile  string
	batch        batch.Options
	results      map[string]*model.MatchResult
}

// NewFit creates the filter that scores jobs against the profile and drops poor fits.
func NewFit() Filter {
	return &fitFilter{}
}

func (f *fitFilter) Name() string { return "fit" }

func (f *fitFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *fitFilter) IsEnabled() bool { return !f.disabled }

func (f *fitFilter) Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration is required")
	}
	if cfg.MinimumScore < 0 || cfg.MinimumScore > 100 {
		return fmt.Errorf("minimum score %d is outside 0..100", cfg.MinimumScore)
	}
	f.minimumScore = cfg.MinimumScore
	f.excludeFile = strings.TrimSpace(cfg.ExcludeFile)
	f.batch = cfg.Batch
	return nil
}

func (f *fitFilter) Apply(ctx context.Context, deps Deps, jobs *model.Jobs) (*model.Jobs, Step, error) {
	initial := jobs.Len()
	if deps.Scorer == nil {
		return jobs, Step{}, errors.New("scorer is required")
	}
	if deps.Profile == nil {
		return jobs, Step{}, errors.New("profile is required")
	}

	items := batch.Run(ctx, deps.Scorer, deps.Profile, jobs.Items, f.batch, deps.Logger)

	f.results = make(map[string]*model.MatchResult, len(items))
	kept := make([]*model.JobPosting, 0, len(items))
	rejected := &model.Jobs{}
	excluded := &model.ExcludedJobs{}

	for _, item := range items {
		log := logger.WithFields(deps.Logger, logger.JobFields(item.Job)...)

		if item.Err != nil {
			if err := ctx.Err(); err != nil {
				return jobs, Step{}, err
			}
			log.Error("job cannot be scored, dropping it", zap.Error(item.Err))
			continue
		}

		f.results[item.Job.ID] = item.Result
		status := item.Result.Verdict(f.minimumScore)
		f.persist(ctx, deps, log, item.Job.ID, item.Result, status)

		if status == model.StatusRejected {
			log.Info("job rejected by fit score",
				zap.Int("score", item.Result.Score),
				zap.Int("minimum_score", f.minimumScore),
				zap.String("reason", item.Result.FirstReason()),
			)
			rejected.Items = append(rejected.Items, item.Job)
			excluded.Append((&model.Jobs{Items: []*model.JobPosting{item.Job}}).ToExcluded(model.ExcludeActorScoring, item.Result.FirstReason()))
			continue
		}

		kept = append(kept, item.Job)
	}

	if err := f.appendExcluded(excluded); err != nil {
		return jobs, Step{}, err
	}

	jobs.Items = kept
	return jobs, Step{Initial: initial, Dropped: initial - jobs.Len(), Left: jobs.Len()}, nil
}

func (f *fitFilter) persist(ctx context.Context, deps Deps, log *zap.Logger, jobID string, result *model.MatchResult, status string) {
	if deps.Store == nil {
		return
	}
	if err := deps.Store.SaveResult(ctx, deps.RunID, jobID, result); err != nil {
		log.Warn("saving match result failed", zap.Error(err))
	}
	if err := deps.Store.UpdateStatus(ctx, jobID, status); err != nil {
		log.Debug("updating job status failed", zap.Error(err))
	}
}

func (f *fitFilter) appendExcluded(excluded *model.ExcludedJobs) error {
	if f.excludeFile == "" || len(excluded.Items) == 0 {
		return nil
	}

	existing, err := model.GetExcludedJobsFromFile(f.excludeFile)
	if err != nil {
		return fmt.Errorf("reading exclude file: %w", err)
	}
	existing.Append(excluded)

	if err := existing.ToFile(f.excludeFile); err != nil {
		return fmt.Errorf("writing exclude file: %w", err)
	}
	return nil
}

func (f *fitFilter) Results() map[string]*model.MatchResult {
	if f.results == nil {
		return map[string]*model.MatchResult{}
	}
	return maps.Clone(f.results)
}

func (f *fitFilter) Status() Status {
	details := map[string]string{
		"minimum_score": strconv.Itoa(f.minimumScore),
		"concurrency":   strconv.Itoa(f.batch.Concurrency),
	}
	if f.batch.Delay > 0 {
		details["delay"] = f.batch.Delay.String()
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
