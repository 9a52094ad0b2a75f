package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/ai"
	"github.com/spigell/jobfit/internal/ai/cache"
	"github.com/spigell/jobfit/internal/ai/gemini"
	"github.com/spigell/jobfit/internal/logger"
	"github.com/spigell/jobfit/internal/scoring"
	"github.com/spigell/jobfit/internal/secrets"
)

// newScorer builds the scoring engine. Without a usable semantic matcher the
// engine still runs and relies on the deterministic fallback scorer.
func newScorer(ctx context.Context, config *Config, log *zap.Logger) (*scoring.Scorer, func()) {
	matcher, closeFn, err := newAIMatcher(ctx, config, log)
	if err != nil {
		log.Warn("semantic matcher disabled, scoring with fallback only", zap.Error(err))
	}

	return scoring.New(matcher, config.Scoring.Config, log), closeFn
}

func newAIMatcher(ctx context.Context, config *Config, log *zap.Logger) (ai.Matcher, func(), error) {
	noop := func() {}

	cfg := config.AI
	if cfg == nil || !cfg.Enabled {
		return nil, noop, errors.New("ai is not enabled")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, noop, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, noop, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := log.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, noop, err
	}

	aiLogger := logger.WithCommonFields(log, "gemini", generator.Model())

	var matcher ai.Matcher = gemini.NewMatcher(generator, cfg.Gemini.MaxLogLength, aiLogger)

	redisCfg := config.Cache.Redis
	if redisCfg == nil || !redisCfg.Enabled {
		return matcher, noop, nil
	}

	store := cache.NewRedis(ctx, cache.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
		TTL:      redisCfg.TTL,
	}, log)

	closeFn := func() {
		if err := store.Close(); err != nil {
			log.Debug("closing redis cache", zap.Error(err))
		}
	}

	return cache.New(matcher, store, redisCfg.TTL, aiLogger), closeFn, nil
}
