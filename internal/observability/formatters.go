// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs a human-readable summary of an analysis result.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	p.printScore(result.MatchScore)
	p.printSkillsMatch("TECHNICAL SKILLS", result.TechnicalSkillsMatch)
	p.printSkillsMatch("SOFT SKILLS", result.SoftSkillsMatch)
	p.printKeywords(result)
	p.printSuggestions(result.ContentSuggestions)
	p.printSentiment(result.SentimentAnalysis)
}

func (p *Printer) printScore(score int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %d / 100\n", score))
	sb.WriteString(fmt.Sprintf("        [%s]", scoreBar(score)))
	p.printBox("MATCH SCORE", sb.String())
}

// scoreBar renders a 40 character progress bar.
func scoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * 40 / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", 40-filled)
}

func (p *Printer) printSkillsMatch(title string, match types.SkillsMatch) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("In job posting:  %d\n", len(match.InJob)))
	sb.WriteString(fmt.Sprintf("In resume:       %d\n", len(match.InResume)))

	if len(match.Missing) > 0 {
		sb.WriteString("\nMissing from resume:\n")
		count := min(len(match.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", match.Missing[i]))
		}
		if len(match.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.Missing)-maxItemsToShow))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printKeywords(result *types.AnalysisResult) {
	if len(result.KeywordsToAdd) == 0 && len(result.KeywordsToRemove) == 0 {
		return
	}

	var sb strings.Builder

	if len(result.KeywordsToAdd) > 0 {
		sb.WriteString("Consider adding:\n")
		count := min(len(result.KeywordsToAdd), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  + %s\n", result.KeywordsToAdd[i]))
		}
		if len(result.KeywordsToAdd) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.KeywordsToAdd)-maxItemsToShow))
		}
	}

	if len(result.KeywordsToRemove) > 0 {
		sb.WriteString("Consider de-emphasizing:\n")
		count := min(len(result.KeywordsToRemove), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  - %s\n", result.KeywordsToRemove[i]))
		}
		if len(result.KeywordsToRemove) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.KeywordsToRemove)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, s))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printSentiment(sentiment types.Sentiment) {
	p.printBox("RESUME TONE", fmt.Sprintf("Sentiment: %s", sentiment.Sentiment))
}
