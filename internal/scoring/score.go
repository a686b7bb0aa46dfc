// Package scoring combines technical-skill overlap, soft-skill overlap, and
// whole-document lexical overlap into a single 0-100 match score.
package scoring

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/matching"
)

// Weights for the three score components.
const (
	technicalWeight = 0.5
	softWeight      = 0.2
	lexicalWeight   = 0.3
)

// Default component scores applied when the job description lists no skills
// in a dimension: the dimension contributes its full weight slice.
const (
	defaultTechnicalPoints = 50
	defaultSoftPoints      = 20
)

var wordRe = regexp.MustCompile(`\b\w+\b`)

// Scorer computes match scores using a similarity matcher for skill
// membership tests.
type Scorer struct {
	matcher *matching.Matcher
}

// New creates a Scorer.
func New(matcher *matching.Matcher) *Scorer {
	return &Scorer{matcher: matcher}
}

// Score computes the weighted 0-100 match between a resume and a job
// description. Each component is clamped to [0,100] before weighting and the
// floored sum is clamped again.
func (s *Scorer) Score(ctx context.Context, resumeText, jobText string, resumeTech, jobTech, resumeSoft, jobSoft []string) int {
	total := 0.0

	if len(jobTech) > 0 {
		total += float64(clampComponent(s.overlapPercent(ctx, jobTech, resumeTech, true))) * technicalWeight
	} else {
		total += defaultTechnicalPoints
	}

	if len(jobSoft) > 0 {
		total += float64(clampComponent(s.overlapPercent(ctx, jobSoft, resumeSoft, true))) * softWeight
	} else {
		total += defaultSoftPoints
	}

	total += float64(clampComponent(int(jaccardSimilarity(resumeText, jobText)*100))) * lexicalWeight

	final := int(total)
	if final < 0 {
		return 0
	}
	if final > 100 {
		return 100
	}
	return final
}

// overlapPercent counts job skills with a similar term in the resume set,
// as a 0-100 percentage of the job set.
func (s *Scorer) overlapPercent(ctx context.Context, jobSkills, resumeSkills []string, techSkill bool) int {
	matches := 0
	for _, skill := range jobSkills {
		if s.matcher.HasSimilarTerm(ctx, skill, resumeSkills, techSkill) {
			matches++
		}
	}
	return int(float64(matches) / float64(len(jobSkills)) * 100)
}

func clampComponent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// jaccardSimilarity computes |A∩B| / |A∪B| over the lowercased word sets of
// the two documents, 0 when both are empty.
func jaccardSimilarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		set[w] = struct{}{}
	}
	return set
}
