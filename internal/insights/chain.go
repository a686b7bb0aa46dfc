package insights

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Chain tries an ordered list of providers until one succeeds. Construct it
// with the most capable provider first and NewLocal last so every capability
// has a deterministic floor and no call ever fails.
type Chain struct {
	providers []Provider
	log       *zap.Logger
}

// NewChain builds a fallback chain over the given providers, in order.
func NewChain(log *zap.Logger, providers ...Provider) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{providers: providers, log: log}
}

// KeyPhrases returns the first successful extraction.
func (c *Chain) KeyPhrases(ctx context.Context, text string) ([]string, error) {
	var lastErr error
	for _, p := range c.providers {
		phrases, err := p.KeyPhrases(ctx, text)
		if err == nil {
			return phrases, nil
		}
		c.log.Warn("key phrase provider failed, falling back", zap.Error(err))
		lastErr = err
	}
	return nil, fmt.Errorf("all key phrase providers failed: %w", lastErr)
}

// Sentiment returns the first successful classification.
func (c *Chain) Sentiment(ctx context.Context, text string) (types.Sentiment, error) {
	var lastErr error
	for _, p := range c.providers {
		s, err := p.Sentiment(ctx, text)
		if err == nil {
			return s, nil
		}
		c.log.Warn("sentiment provider failed, falling back", zap.Error(err))
		lastErr = err
	}
	return types.Sentiment{}, fmt.Errorf("all sentiment providers failed: %w", lastErr)
}

// TextQuality returns the first successful analysis.
func (c *Chain) TextQuality(ctx context.Context, text string) (types.TextQuality, error) {
	var lastErr error
	for _, p := range c.providers {
		q, err := p.TextQuality(ctx, text)
		if err == nil {
			return q, nil
		}
		c.log.Warn("text quality provider failed, falling back", zap.Error(err))
		lastErr = err
	}
	return types.TextQuality{}, fmt.Errorf("all text quality providers failed: %w", lastErr)
}

// Similarity returns the first successful similarity computation.
func (c *Chain) Similarity(ctx context.Context, a, b string) (float64, error) {
	var lastErr error
	for _, p := range c.providers {
		score, err := p.Similarity(ctx, a, b)
		if err == nil {
			return score, nil
		}
		c.log.Warn("embedding provider failed, falling back", zap.Error(err))
		lastErr = err
	}
	return 0, fmt.Errorf("all embedding providers failed: %w", lastErr)
}
