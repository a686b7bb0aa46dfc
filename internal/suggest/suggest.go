// Package suggest synthesizes human-readable resume improvement suggestions
// from missing keywords, passive-voice signal, and missing-quality signal.
// Each heuristic is independent; collaborator failures degrade that heuristic
// alone and the generator never returns an error or an empty list.
package suggest

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/insights"
)

const (
	// achievementsProbe and its threshold gate the quantifiable-results
	// suggestion.
	achievementsProbe     = "achievements accomplishments results impact outcomes success metrics"
	achievementsThreshold = 0.3

	// actionVerbProbe and its threshold gate the stronger-verbs suggestion
	// for the experience section.
	actionVerbProbe     = "achieved improved increased decreased launched created managed led"
	actionVerbThreshold = 0.4

	// passiveRatioThreshold triggers the active-voice suggestion.
	passiveRatioThreshold = 0.3

	maxKeywordSuggestions = 3
	keywordContextWindow  = 100
	maxPassiveRewrites    = 2
	maxMissingQualities   = 2
	maxFallbackKeywords   = 5
)

// Generator produces content suggestions.
type Generator struct {
	embedder  insights.Embedder
	quality   insights.QualityAnalyzer
	extractor *extraction.Extractor
	log       *zap.Logger
}

// New creates a Generator.
func New(embedder insights.Embedder, quality insights.QualityAnalyzer, extractor *extraction.Extractor, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{embedder: embedder, quality: quality, extractor: extractor, log: log}
}

// Generate runs every heuristic in order and collects the suggestions that
// fired. It always returns at least one suggestion: generic fallbacks cover
// the no-signal case, and any panic inside the procedure degrades to the
// fixed fallback set.
func (g *Generator) Generate(ctx context.Context, resumeText, jobText string, keywordsToAdd []string) (suggestions []string) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Warn("suggestion generation failed, using fallback set", zap.Any("panic", r))
			suggestions = FallbackSuggestions(keywordsToAdd)
		}
	}()

	suggestions = []string{}

	if s, ok := g.achievementLanguage(ctx, resumeText); ok {
		suggestions = append(suggestions, s)
	}
	suggestions = append(suggestions, g.keywordContext(jobText, keywordsToAdd)...)
	suggestions = append(suggestions, g.passiveVoice(ctx, resumeText)...)
	if s, ok := g.experienceVerbs(ctx, resumeText); ok {
		suggestions = append(suggestions, s)
	}
	suggestions = append(suggestions, g.missingQualities(jobText, resumeText)...)

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Tailor your resume to highlight more accomplishments and specific results relevant to the job description.",
			"Use numbers and metrics to quantify your achievements and responsibilities.",
		)
	}
	return suggestions
}

// achievementLanguage fires when the resume reads far from achievement-oriented
// language.
func (g *Generator) achievementLanguage(ctx context.Context, resumeText string) (string, bool) {
	similarity, err := g.embedder.Similarity(ctx, resumeText, achievementsProbe)
	if err != nil {
		g.log.Warn("achievement probe failed, skipping heuristic", zap.Error(err))
		return "", false
	}
	if similarity >= achievementsThreshold {
		return "", false
	}
	return "Your resume lacks achievement-oriented language. Add quantifiable results and outcomes for your experiences.", true
}

// keywordContext quotes the job-description context around the most important
// missing keywords.
func (g *Generator) keywordContext(jobText string, keywordsToAdd []string) []string {
	suggestions := []string{}
	jobLower := strings.ToLower(jobText)

	limit := maxKeywordSuggestions
	if len(keywordsToAdd) < limit {
		limit = len(keywordsToAdd)
	}

	for _, keyword := range keywordsToAdd[:limit] {
		idx := strings.Index(jobLower, strings.ToLower(keyword))
		if idx < 0 {
			continue
		}

		start := idx - keywordContextWindow
		if start < 0 {
			start = 0
		}
		for start > 0 && !utf8.RuneStart(jobText[start]) {
			start--
		}
		end := idx + keywordContextWindow
		if end > len(jobText) {
			end = len(jobText)
		}
		for end < len(jobText) && !utf8.RuneStart(jobText[end]) {
			end++
		}
		window := strings.TrimSpace(jobText[start:end])

		suggestions = append(suggestions, fmt.Sprintf(
			"Add details about your experience with '%s'. The job description specifically mentions this skill in the context of: '%s'",
			keyword, window))
	}
	return suggestions
}

// passiveVoice fires on a high passive ratio, with up to two concrete
// rewrites.
func (g *Generator) passiveVoice(ctx context.Context, resumeText string) []string {
	quality, err := g.quality.TextQuality(ctx, resumeText)
	if err != nil {
		g.log.Warn("text quality analysis failed, skipping heuristic", zap.Error(err))
		return nil
	}
	if quality.PassiveVoiceRatio <= passiveRatioThreshold {
		return nil
	}

	suggestions := []string{"Use more active voice and stronger action verbs to describe your experience."}
	for i, example := range quality.PassiveExamples {
		if i >= maxPassiveRewrites {
			break
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Replace passive phrase '%s' with active alternative like '%s'",
			example.Original, example.Suggestion))
	}
	return suggestions
}

// experienceVerbs fires when the experience section reads far from strong
// action-verb language.
func (g *Generator) experienceVerbs(ctx context.Context, resumeText string) (string, bool) {
	section := ExtractExperienceSection(resumeText)
	if section == "" {
		return "", false
	}

	similarity, err := g.embedder.Similarity(ctx, section, actionVerbProbe)
	if err != nil {
		g.log.Warn("action verb probe failed, skipping heuristic", zap.Error(err))
		return "", false
	}
	if similarity >= actionVerbThreshold {
		return "", false
	}
	return "Enhance your experience descriptions with more impactful action verbs like 'achieved', 'improved', 'increased', 'launched' or 'led'.", true
}

// missingQualities suggests demonstrating soft skills the job asks for that
// the resume never mentions.
func (g *Generator) missingQualities(jobText, resumeText string) []string {
	jobQualities := g.extractor.Soft(jobText)
	resumeQualities := make(map[string]struct{})
	for _, q := range g.extractor.Soft(resumeText) {
		resumeQualities[q] = struct{}{}
	}

	suggestions := []string{}
	for _, quality := range jobQualities {
		if _, present := resumeQualities[quality]; present {
			continue
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Demonstrate the '%s' quality mentioned in the job description with specific examples from your experience.",
			quality))
		if len(suggestions) == maxMissingQualities {
			break
		}
	}
	return suggestions
}

// FallbackSuggestions is the fixed degradation set used when suggestion
// generation fails wholesale.
func FallbackSuggestions(keywordsToAdd []string) []string {
	suggestions := []string{
		"Tailor your resume to highlight skills and experiences relevant to the job description.",
		"Use numbers and metrics to quantify your achievements and responsibilities.",
		"Focus on results and accomplishments rather than just listing duties.",
	}

	if len(keywordsToAdd) > 0 {
		limit := maxFallbackKeywords
		if len(keywordsToAdd) < limit {
			limit = len(keywordsToAdd)
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Add relevant keywords such as: %s.", strings.Join(keywordsToAdd[:limit], ", ")))
	}
	return suggestions
}
