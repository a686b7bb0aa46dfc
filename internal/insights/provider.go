// Package insights defines the language-analysis collaborators the matching
// engine consumes (key phrases, sentiment, text quality, embedding similarity)
// and provides a remote Gemini-backed provider, a deterministic local provider,
// and a fallback chain combining them.
package insights

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/types"
)

// KeyPhraseExtractor extracts short candidate phrases from a document. A
// failing implementation returns an error; callers degrade to an empty list.
type KeyPhraseExtractor interface {
	KeyPhrases(ctx context.Context, text string) ([]string, error)
}

// SentimentAnalyzer classifies the overall sentiment of a document. Callers
// degrade to types.NeutralSentiment on error.
type SentimentAnalyzer interface {
	Sentiment(ctx context.Context, text string) (types.Sentiment, error)
}

// QualityAnalyzer reports the passive-voice signal for a document. Callers
// degrade to the zero types.TextQuality on error.
type QualityAnalyzer interface {
	TextQuality(ctx context.Context, text string) (types.TextQuality, error)
}

// Embedder computes a similarity in [0,1] between two texts from vector
// representations.
type Embedder interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Provider bundles every collaborator capability behind one value.
type Provider interface {
	KeyPhraseExtractor
	SentimentAnalyzer
	QualityAnalyzer
	Embedder
}
