package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func sampleResult() *types.AnalysisResult {
	result := types.EmptyResult()
	result.MatchScore = 72
	result.TechnicalSkillsMatch = types.SkillsMatch{
		InJob:    []string{"python", "django", "postgresql"},
		InResume: []string{"python", "django"},
		Missing:  []string{"postgresql"},
	}
	result.SoftSkillsMatch = types.SkillsMatch{
		InJob:    []string{"leadership"},
		InResume: []string{},
		Missing:  []string{"leadership"},
	}
	result.KeywordsToAdd = []string{"postgresql", "leadership"}
	result.KeywordsToRemove = []string{"php"}
	result.ContentSuggestions = []string{
		"Consider adding metrics or quantifiable achievements to your bullet points",
	}
	return result
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "MATCH SCORE")
	assert.Contains(t, output, "72 / 100")
	assert.Contains(t, output, "TECHNICAL SKILLS")
	assert.Contains(t, output, "SOFT SKILLS")
	assert.Contains(t, output, "postgresql")
	assert.Contains(t, output, "KEYWORDS")
	assert.Contains(t, output, "+ postgresql")
	assert.Contains(t, output, "- php")
	assert.Contains(t, output, "SUGGESTIONS")
	assert.Contains(t, output, "RESUME TONE")
	assert.Contains(t, output, "neutral")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResult_NoKeywordsOmitsBox(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.EmptyResult()
	p.PrintResult(result)

	assert.NotContains(t, buf.String(), "KEYWORDS")
}

func TestPrintResult_TruncatesMissingList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.EmptyResult()
	result.TechnicalSkillsMatch.Missing = []string{"a", "b", "c", "d", "e", "f", "g"}
	p.PrintResult(result)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", 40), scoreBar(0))
	assert.Equal(t, strings.Repeat("█", 40), scoreBar(100))
	assert.Equal(t, strings.Repeat("█", 20)+strings.Repeat("░", 20), scoreBar(50))
	assert.Len(t, []rune(scoreBar(143)), 40)
	assert.Len(t, []rune(scoreBar(-5)), 40)
}
