// Package scoring reconciles deterministic fit signals with a semantic
// judgment into a single MatchResult.
package scoring

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/ai"
	"github.com/spigell/jobfit/internal/logger"
	"github.com/spigell/jobfit/internal/mismatch"
	"github.com/spigell/jobfit/internal/model"
)

const (
	PathPrefilter = "prefilter"
	PathSemantic  = "semantic"
	PathFallback  = "fallback"
)

type Scorer struct {
	matcher ai.Matcher
	cfg     Config
	logger  *zap.Logger
}

// New builds a Scorer. A nil matcher scores every pair with the fallback rules.
func New(matcher ai.Matcher, cfg Config, log *zap.Logger) *Scorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{
		matcher: matcher,
		cfg:     cfg.withDefaults(),
		logger:  log,
	}
}

// Score rates how well profile fits job. Only invalid input is returned as an
// error; semantic matcher failures resolve to the fallback result.
func (s *Scorer) Score(ctx context.Context, job *model.JobPosting, profile *model.ProfileData) (*model.MatchResult, error) {
	if err := model.ValidateProfile(profile); err != nil {
		return nil, err
	}
	if err := model.ValidateJob(job); err != nil {
		return nil, err
	}

	log := logger.WithFields(s.logger, logger.JobFields(job)...)

	signals := mismatch.Detect(profile, job, mismatch.Options{
		RelevantSkillThreshold: s.cfg.RelevantSkillThreshold,
		Now:                    s.cfg.Now(),
	})
	log.Debug("fit signals derived", signalFields(signals)...)

	if result, ok := Prefilter(signals); ok {
		log.Debug("scored", zap.String("path", PathPrefilter), zap.Int("score", result.Score))
		return result, nil
	}

	if s.matcher == nil {
		return s.fallback(log, profile, job, signals, errors.New("no semantic matcher configured")), nil
	}

	assessment, err := s.matcher.Match(ctx, BuildPrompt(profile, job, signals, s.cfg))
	if err != nil {
		return s.fallback(log, profile, job, signals, err), nil
	}

	result := Reconcile(assessment, signals)
	log.Debug("scored",
		zap.String("path", PathSemantic),
		zap.Float64("semantic_score", assessment.Score),
		zap.Int("score", result.Score),
	)

	return result, nil
}

func (s *Scorer) fallback(log *zap.Logger, profile *model.ProfileData, job *model.JobPosting, signals mismatch.Signals, cause error) *model.MatchResult {
	result := Fallback(profile, job, signals, s.cfg.RelevantSkillThreshold)

	var parseErr *ai.ParseError
	if errors.As(cause, &parseErr) {
		log.Warn("semantic response unparsable, using fallback scorer", zap.Error(cause))
	} else {
		log.Warn("semantic matcher unavailable, using fallback scorer", zap.Error(cause))
	}
	log.Debug("scored", zap.String("path", PathFallback), zap.Int("score", result.Score))

	return result
}

func signalFields(s mismatch.Signals) []zap.Field {
	return []zap.Field{
		zap.String("profile_seniority", string(s.ProfileSeniority.Level)),
		zap.Int("profile_years", s.ProfileSeniority.TotalYears),
		zap.String("job_seniority", string(s.JobSeniority)),
		zap.String("seniority_mismatch", string(s.Seniority)),
		zap.String("profile_industry", s.ProfileIndustry.Primary),
		zap.String("job_industry", s.JobIndustry),
		zap.Bool("industry_mismatch", s.IndustryMismatch),
		zap.Bool("it_mismatch", s.ITMismatch),
		zap.Int("matched_skills", len(s.MatchedSkills)),
		zap.Bool("relevant_skills", s.RelevantSkills),
	}
}
