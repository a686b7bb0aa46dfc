package suggest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/insights"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// stubEmbedder returns a fixed similarity.
type stubEmbedder struct {
	score float64
}

func (s stubEmbedder) Similarity(context.Context, string, string) (float64, error) {
	return s.score, nil
}

// stubQuality returns a fixed quality report.
type stubQuality struct {
	quality types.TextQuality
}

func (s stubQuality) TextQuality(context.Context, string) (types.TextQuality, error) {
	return s.quality, nil
}

// failingQuality always errors.
type failingQuality struct{}

func (failingQuality) TextQuality(context.Context, string) (types.TextQuality, error) {
	return types.TextQuality{}, fmt.Errorf("quality service down")
}

func newGenerator(embedder insights.Embedder, quality insights.QualityAnalyzer) *Generator {
	return New(embedder, quality, extraction.New(taxonomy.New()), nil)
}

func TestGenerate_NeverEmpty(t *testing.T) {
	// High similarity, no passive voice, no keywords: nothing fires.
	g := newGenerator(stubEmbedder{score: 0.9}, stubQuality{})

	got := g.Generate(context.Background(), "resume text", "job text", nil)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "Tailor your resume")
	assert.Contains(t, got[1], "numbers and metrics")
}

func TestGenerate_AchievementLanguage(t *testing.T) {
	g := newGenerator(stubEmbedder{score: 0.1}, stubQuality{})

	got := g.Generate(context.Background(), "I did things.", "job", nil)
	assert.Contains(t, got[0], "achievement-oriented language")
}

func TestGenerate_KeywordContextWindow(t *testing.T) {
	job := "We are looking for an engineer with deep PostgreSQL expertise to own our storage layer."
	g := newGenerator(stubEmbedder{score: 0.9}, stubQuality{})

	got := g.Generate(context.Background(), "resume", job, []string{"postgresql"})

	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "experience with 'postgresql'")
	assert.Contains(t, got[0], "PostgreSQL expertise")
}

func TestGenerate_KeywordContextKeepsRuneBoundaries(t *testing.T) {
	// The keyword sits 121 bytes in, so the window's left edge falls inside a
	// two-byte rune and must back off to its start.
	job := strings.Repeat("é", 60) + " postgresql experience required"
	g := newGenerator(stubEmbedder{score: 0.9}, stubQuality{})

	got := g.Generate(context.Background(), "resume", job, []string{"postgresql"})

	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "experience with 'postgresql'")
	assert.True(t, utf8.ValidString(got[0]))
}

func TestGenerate_KeywordContextLimitsToThree(t *testing.T) {
	job := "python terraform kubernetes docker ansible"
	g := newGenerator(stubEmbedder{score: 0.9}, stubQuality{})

	got := g.Generate(context.Background(), "resume", job,
		[]string{"python", "terraform", "kubernetes", "docker", "ansible"})

	count := 0
	for _, s := range got {
		if strings.Contains(s, "Add details about your experience") {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

func TestGenerate_KeywordAbsentFromJobTextSkipped(t *testing.T) {
	g := newGenerator(stubEmbedder{score: 0.9}, stubQuality{})

	got := g.Generate(context.Background(), "resume", "a job about gardening", []string{"python"})
	for _, s := range got {
		assert.NotContains(t, s, "Add details about your experience")
	}
}

func TestGenerate_PassiveVoice(t *testing.T) {
	quality := stubQuality{quality: types.TextQuality{
		PassiveVoiceRatio: 0.6,
		PassiveExamples: []types.PassiveExample{
			{Original: "The project was managed by the team.", Suggestion: "The team actively did the project."},
			{Original: "Reports were prepared weekly.", Suggestion: "I actively did reports weekly."},
			{Original: "Budgets were reviewed monthly.", Suggestion: "I actively did budgets monthly."},
		},
	}}
	g := newGenerator(stubEmbedder{score: 0.9}, quality)

	got := g.Generate(context.Background(), "The project was managed by the team.", "job", nil)

	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, "Use more active voice")
	assert.Contains(t, joined, "Replace passive phrase 'The project was managed by the team.'")

	// Only two rewrite examples are surfaced.
	rewrites := 0
	for _, s := range got {
		if strings.HasPrefix(s, "Replace passive phrase") {
			rewrites++
		}
	}
	assert.Equal(t, 2, rewrites)
}

func TestGenerate_EndToEndPassiveResume(t *testing.T) {
	// Fully passive resume through the real local analyzer.
	g := newGenerator(stubEmbedder{score: 0.9}, insights.NewLocal())

	got := g.Generate(context.Background(),
		"The project was managed by the team. The rollout was planned by me.",
		"neutral job description", nil)

	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, "Use more active voice")
	assert.Contains(t, joined, "Replace passive phrase")
}

func TestGenerate_QualityFailureSkipsHeuristic(t *testing.T) {
	g := newGenerator(stubEmbedder{score: 0.9}, failingQuality{})

	got := g.Generate(context.Background(), "resume", "job", nil)
	for _, s := range got {
		assert.NotContains(t, s, "active voice")
	}
}

func TestGenerate_ExperienceSectionVerbs(t *testing.T) {
	resume := "Summary\n\nExperience:\nresponsible for stuff at a company\n\nEducation\nSome school"
	g := newGenerator(stubEmbedder{score: 0.1}, stubQuality{})

	got := g.Generate(context.Background(), resume, "job", nil)

	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, "impactful action verbs")
}

func TestGenerate_MissingQualities(t *testing.T) {
	job := "We value leadership and teamwork above all."
	resume := "I write code."
	g := newGenerator(stubEmbedder{score: 0.9}, stubQuality{})

	got := g.Generate(context.Background(), resume, job, nil)

	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, "'leadership' quality")
	assert.Contains(t, joined, "'teamwork' quality")
}

func TestGenerate_MissingQualitiesCappedAtTwo(t *testing.T) {
	job := "leadership teamwork communication creativity adaptability"
	g := newGenerator(stubEmbedder{score: 0.9}, stubQuality{})

	got := g.Generate(context.Background(), "nothing relevant", job, nil)

	count := 0
	for _, s := range got {
		if strings.Contains(s, "quality mentioned in the job description") {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestFallbackSuggestions_WithKeywords(t *testing.T) {
	got := FallbackSuggestions([]string{"python", "django", "redis", "kafka", "terraform", "extra"})

	require.Len(t, got, 4)
	assert.Contains(t, got[3], "python, django, redis, kafka, terraform")
	assert.NotContains(t, got[3], "extra")
}

func TestFallbackSuggestions_WithoutKeywords(t *testing.T) {
	got := FallbackSuggestions(nil)
	assert.Len(t, got, 3)
}

func TestExtractExperienceSection_FindsHeading(t *testing.T) {
	resume := "Profile\n\nWork Experience:\nled the platform team\nshipped the billing rewrite\n\nEducation\nState University"
	section := ExtractExperienceSection(resume)

	assert.Contains(t, section, "led the platform team")
	assert.NotContains(t, section, "State University")
}

func TestExtractExperienceSection_MissingSection(t *testing.T) {
	assert.Equal(t, "", ExtractExperienceSection("just a paragraph about hobbies"))
}
