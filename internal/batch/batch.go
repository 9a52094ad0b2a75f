// Package batch scores many job postings against one profile in parallel.
package batch

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/jobfit/internal/logger"
	"github.com/spigell/jobfit/internal/model"
	"github.com/spigell/jobfit/internal/utils"
)

const DefaultConcurrency = 4

type Scorer interface {
	Score(ctx context.Context, job *model.JobPosting, profile *model.ProfileData) (*model.MatchResult, error)
}

type Options struct {
	// Concurrency caps the number of jobs scored at the same time.
	Concurrency int `mapstructure:"concurrency"`
	// Delay is the minimum spacing between the start of two scoring calls.
	Delay time.Duration `mapstructure:"delay"`
}

// Item is the outcome for one job. Exactly one of Result and Err is set.
type Item struct {
	Job    *model.JobPosting
	Result *model.MatchResult
	Err    error
}

// Run scores every job and returns the items in input order. A failing job
// never aborts the batch. Jobs not started before ctx is done carry ctx.Err().
func Run(ctx context.Context, scorer Scorer, profile *model.ProfileData, jobs []*model.JobPosting, opts Options, log *zap.Logger) []Item {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	items := make([]Item, len(jobs))
	pace := &pacer{delay: opts.Delay}

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)

	for i, job := range jobs {
		items[i].Job = job

		if err := ctx.Err(); err != nil {
			items[i].Err = err
			continue
		}

		g.Go(func() error {
			jobLog := logger.WithFields(log, logger.JobFields(job)...)

			if err := pace.wait(ctx); err != nil {
				items[i].Err = err
				return nil
			}

			result, err := scorer.Score(ctx, job, profile)
			if err != nil {
				jobLog.Warn("job scoring failed", zap.Error(err))
				items[i].Err = err
				return nil
			}

			jobLog.Info("job scored", zap.Int("score", result.Score))
			items[i].Result = result
			return nil
		})
	}

	_ = g.Wait()

	return items
}

// pacer spaces call starts by a fixed delay across goroutines.
type pacer struct {
	mu    sync.Mutex
	delay time.Duration
	next  time.Time
}

func (p *pacer) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}

	p.mu.Lock()
	now := time.Now()
	start := p.next
	if start.Before(now) {
		start = now
	}
	p.next = start.Add(p.delay)
	p.mu.Unlock()

	return utils.WaitFor(ctx, start.Sub(now))
}
