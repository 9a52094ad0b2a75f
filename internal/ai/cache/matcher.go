package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/ai"
)

const keyPrefix = "jobfit:semantic:"

type Store interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Matcher serves repeated prompts from the store and delegates misses.
type Matcher struct {
	inner  ai.Matcher
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

func New(inner ai.Matcher, store Store, ttl time.Duration, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{inner: inner, store: store, ttl: ttl, logger: logger}
}

type entry struct {
	Assessment ai.Assessment `json:"assessment"`
	Raw        string        `json:"raw"`
}

func (m *Matcher) Match(ctx context.Context, prompt string) (*ai.Assessment, error) {
	key := Key(prompt)

	var cached entry
	hit, err := m.store.GetJSON(ctx, key, &cached)
	if err != nil {
		m.logger.Debug("semantic cache lookup failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		m.logger.Debug("semantic cache hit", zap.String("key", key))
		assessment := cached.Assessment
		assessment.Raw = cached.Raw
		return &assessment, nil
	}

	assessment, err := m.inner.Match(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if err := m.store.SetJSON(ctx, key, entry{Assessment: *assessment, Raw: assessment.Raw}, m.ttl); err != nil {
		m.logger.Debug("semantic cache store failed", zap.String("key", key), zap.Error(err))
	}

	return assessment, nil
}

// Key returns the cache key of a prompt.
func Key(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return keyPrefix + hex.EncodeToString(sum[:])
}
