// Package types provides type definitions for structured data shared across the
// resume-matcher engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillsMatch summarizes one skill dimension (technical or soft) of the
// resume/job comparison.
type SkillsMatch struct {
	InJob    []string `json:"inJob"`
	InResume []string `json:"inResume"`
	Missing  []string `json:"missing"`
}

// Sentiment is the sentiment summary for the resume text.
type Sentiment struct {
	Sentiment string `json:"sentiment"`
}

// NeutralSentiment is the default used whenever sentiment analysis is
// unavailable or returns malformed data.
func NeutralSentiment() Sentiment {
	return Sentiment{Sentiment: "neutral"}
}

// PassiveExample is a passive-voice sentence paired with an active rewrite.
type PassiveExample struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
}

// TextQuality holds the passive-voice signal reported by the quality analyzer.
// The zero value is the documented degradation default.
type TextQuality struct {
	PassiveVoiceRatio float64          `json:"passive_voice_ratio"`
	PassiveExamples   []PassiveExample `json:"passive_examples"`
}

// AnalysisResult is the terminal value of an analysis run. It is constructed
// once per call and never mutated after return.
type AnalysisResult struct {
	KeywordsToAdd        []string    `json:"keywordsToAdd"`
	KeywordsToRemove     []string    `json:"keywordsToRemove"`
	ContentSuggestions   []string    `json:"contentSuggestions"`
	MatchScore           int         `json:"matchScore"`
	TechnicalSkillsMatch SkillsMatch `json:"technicalSkillsMatch"`
	SoftSkillsMatch      SkillsMatch `json:"softSkillsMatch"`
	SentimentAnalysis    Sentiment   `json:"sentimentAnalysis"`
}

// EmptyResult returns a zero-score result with all collections initialized,
// used for the extraction-error short-circuit.
func EmptyResult() *AnalysisResult {
	return &AnalysisResult{
		KeywordsToAdd:        []string{},
		KeywordsToRemove:     []string{},
		ContentSuggestions:   []string{},
		TechnicalSkillsMatch: SkillsMatch{InJob: []string{}, InResume: []string{}, Missing: []string{}},
		SoftSkillsMatch:      SkillsMatch{InJob: []string{}, InResume: []string{}, Missing: []string{}},
		SentimentAnalysis:    NeutralSentiment(),
	}
}
