// Package analyzer is the engine's public entry point: it sequences skill
// extraction, similarity matching, scoring, and suggestion generation, and
// assembles the analysis result.
package analyzer

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/insights"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/suggest"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Analyzer orchestrates one resume-vs-job analysis. All of its state is
// read-only after construction, so a single Analyzer serves concurrent calls.
type Analyzer struct {
	provider  insights.Provider
	extractor *extraction.Extractor
	matcher   *matching.Matcher
	scorer    *scoring.Scorer
	generator *suggest.Generator
	log       *zap.Logger
}

// Option configures an Analyzer.
type Option func(*options)

type options struct {
	threshold float64
	log       *zap.Logger
}

// WithThreshold overrides the similarity threshold used for all membership
// tests.
func WithThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New builds an Analyzer over the given insights provider, wiring the shared
// taxonomy catalog through the extractor, matcher, scorer and generator.
func New(provider insights.Provider, opts ...Option) *Analyzer {
	o := &options{
		threshold: matching.DefaultThreshold,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	catalog := taxonomy.New()
	extractor := extraction.New(catalog)
	matcher := matching.New(provider, matching.WithThreshold(o.threshold), matching.WithLogger(o.log))

	return &Analyzer{
		provider:  provider,
		extractor: extractor,
		matcher:   matcher,
		scorer:    scoring.New(matcher),
		generator: suggest.New(provider, provider, extractor, o.log),
		log:       o.log,
	}
}

// documentSkills is the per-document extraction output.
type documentSkills struct {
	technical []string
	soft      []string
}

// Analyze compares a resume against a job description. It never returns an
// error: extraction failures short-circuit into an error-carrying result and
// collaborator failures degrade to documented defaults.
func (a *Analyzer) Analyze(ctx context.Context, resume, job types.Document) *types.AnalysisResult {
	if resume.Errored() || job.Errored() {
		return errorResult(resume, job)
	}

	var resumeSkills, jobSkills documentSkills

	// The two documents are independent until matching; extract them
	// concurrently. Extraction itself cannot fail, so the group never
	// returns an error.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resumeSkills = a.extractDocument(gctx, resume.Text)
		return nil
	})
	g.Go(func() error {
		jobSkills = a.extractDocument(gctx, job.Text)
		return nil
	})
	_ = g.Wait()

	// Soft skills run through the same boosted membership test as technical
	// ones; the acronym and variant tables simply never fire for them.
	missingTechnical := a.absentFrom(ctx, jobSkills.technical, resumeSkills.technical, true)
	missingSoft := a.absentFrom(ctx, jobSkills.soft, resumeSkills.soft, true)
	keywordsToRemove := a.absentFrom(ctx, resumeSkills.technical, jobSkills.technical, true)

	keywordsToAdd := make([]string, 0, len(missingTechnical)+len(missingSoft))
	keywordsToAdd = append(keywordsToAdd, missingTechnical...)
	keywordsToAdd = append(keywordsToAdd, missingSoft...)

	sentiment := a.resumeSentiment(ctx, resume.Text)

	score := a.scorer.Score(ctx, resume.Text, job.Text,
		resumeSkills.technical, jobSkills.technical,
		resumeSkills.soft, jobSkills.soft)

	suggestions := a.generator.Generate(ctx, resume.Text, job.Text, keywordsToAdd)

	a.log.Debug("analysis complete",
		zap.Int("match_score", score),
		zap.Int("keywords_to_add", len(keywordsToAdd)),
		zap.Int("keywords_to_remove", len(keywordsToRemove)))

	return &types.AnalysisResult{
		KeywordsToAdd:      keywordsToAdd,
		KeywordsToRemove:   keywordsToRemove,
		ContentSuggestions: suggestions,
		MatchScore:         score,
		TechnicalSkillsMatch: types.SkillsMatch{
			InJob:    jobSkills.technical,
			InResume: resumeSkills.technical,
			Missing:  missingTechnical,
		},
		SoftSkillsMatch: types.SkillsMatch{
			InJob:    jobSkills.soft,
			InResume: resumeSkills.soft,
			Missing:  missingSoft,
		},
		SentimentAnalysis: sentiment,
	}
}

// extractDocument pulls key phrases (degrading to none on failure) and
// extracts both skill dimensions for one document.
func (a *Analyzer) extractDocument(ctx context.Context, text string) documentSkills {
	keyPhrases, err := a.provider.KeyPhrases(ctx, text)
	if err != nil {
		a.log.Warn("key phrase extraction failed, proceeding on full text", zap.Error(err))
		keyPhrases = nil
	}

	return documentSkills{
		technical: a.extractor.Technical(keyPhrases, text),
		soft:      a.extractor.Soft(text),
	}
}

// absentFrom returns the terms with no similar counterpart in the reference
// set, preserving input order.
func (a *Analyzer) absentFrom(ctx context.Context, terms, reference []string, techSkill bool) []string {
	missing := []string{}
	for _, term := range terms {
		if !a.matcher.HasSimilarTerm(ctx, term, reference, techSkill) {
			missing = append(missing, term)
		}
	}
	return missing
}

// resumeSentiment fetches the sentiment summary, defaulting to neutral on any
// failure or malformed response.
func (a *Analyzer) resumeSentiment(ctx context.Context, text string) types.Sentiment {
	sentiment, err := a.provider.Sentiment(ctx, text)
	if err != nil {
		a.log.Warn("sentiment analysis failed, defaulting to neutral", zap.Error(err))
		return types.NeutralSentiment()
	}
	if sentiment.Sentiment == "" {
		return types.NeutralSentiment()
	}
	return sentiment
}

// errorResult builds the zero-score short-circuit result, carrying each
// extraction error message verbatim as a content suggestion.
func errorResult(resume, job types.Document) *types.AnalysisResult {
	result := types.EmptyResult()
	if resume.Errored() {
		result.ContentSuggestions = append(result.ContentSuggestions, resume.Err)
	}
	if job.Errored() {
		result.ContentSuggestions = append(result.ContentSuggestions, job.Err)
	}
	return result
}
