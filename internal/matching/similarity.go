// Package matching decides whether a skill term has an equivalent in a
// reference set, combining exact, substring and semantic similarity checks.
package matching

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/insights"
	"github.com/jonathan/resume-matcher/internal/parsing"
)

const (
	// DefaultThreshold is the similarity above which two terms are
	// considered equivalent.
	DefaultThreshold = 0.6

	// acronymScore and variantScore are the boosted similarities for
	// normalized acronym and known-variant matches.
	acronymScore = 1.0
	variantScore = 0.9

	// cosineWeight and partialWeight blend embedding similarity with the
	// partial string-match score for technical terms.
	cosineWeight  = 0.7
	partialWeight = 0.3
)

// Matcher checks term equivalence against candidate sets. It is stateless
// apart from its read-only configuration and safe for concurrent use.
type Matcher struct {
	embedder  insights.Embedder
	threshold float64
	log       *zap.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold overrides the default similarity threshold.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// WithLogger attaches a logger for degradation events.
func WithLogger(log *zap.Logger) Option {
	return func(m *Matcher) {
		m.log = log
	}
}

// New creates a Matcher delegating semantic similarity to the given embedder.
func New(embedder insights.Embedder, opts ...Option) *Matcher {
	m := &Matcher{
		embedder:  embedder,
		threshold: DefaultThreshold,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Threshold returns the configured similarity threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// HasSimilarTerm reports whether term has an equivalent among candidates.
// Checks run cheapest first and short-circuit: exact case-insensitive
// equality, then substring containment with a length-ratio guard, then
// delegated semantic similarity against each candidate.
func (m *Matcher) HasSimilarTerm(ctx context.Context, term string, candidates []string, techSkill bool) bool {
	termLower := strings.ToLower(term)

	for _, candidate := range candidates {
		if termLower == strings.ToLower(candidate) {
			return true
		}
	}

	for _, candidate := range candidates {
		candidateLower := strings.ToLower(candidate)
		if !strings.Contains(termLower, candidateLower) && !strings.Contains(candidateLower, termLower) {
			continue
		}
		shorter, longer := len(termLower), len(candidateLower)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		if longer > 0 && float64(shorter)/float64(longer) > m.threshold {
			return true
		}
	}

	for _, candidate := range candidates {
		if m.TermSimilarity(ctx, term, candidate, techSkill) > m.threshold {
			return true
		}
	}

	return false
}

// TermSimilarity computes the semantic similarity between two terms, clamped
// to [0,1]. For technical skills, normalized acronym and known-variant matches
// are boosted before falling back to embedding cosine similarity blended with
// the partial string-match score.
func (m *Matcher) TermSimilarity(ctx context.Context, a, b string, techSkill bool) float64 {
	if techSkill {
		na := parsing.Normalize(a)
		nb := parsing.Normalize(b)

		if parsing.IsAcronymMatch(na, nb) {
			return acronymScore
		}
		if parsing.AreKnownVariants(na, nb) {
			return variantScore
		}
	}

	cosine, err := m.embedder.Similarity(ctx, a, b)
	if err != nil {
		m.log.Warn("embedding similarity failed, using zero", zap.Error(err))
		cosine = 0
	}

	similarity := cosine
	if techSkill {
		similarity = cosineWeight*cosine + partialWeight*parsing.PartialMatchScore(a, b)
	}

	if similarity < 0 {
		return 0
	}
	if similarity > 1 {
		return 1
	}
	return similarity
}
