package suggest

import (
	"regexp"
	"strings"
)

// experienceHeadings are the section names recognized as the work-history
// section of a resume.
var experienceHeadings = []string{"experience", "work experience", "employment"}

var sectionPatterns = buildSectionPatterns()

// buildSectionPatterns compiles one pattern per heading: the heading on its
// own line (optionally with a colon), capturing until a blank line, a
// capitalized heading line, or end of input.
func buildSectionPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(experienceHeadings))
	for _, name := range experienceHeadings {
		// The heading matches case-insensitively; the terminating heading
		// check stays case-sensitive so only capitalized lines end a section.
		patterns = append(patterns, regexp.MustCompile(
			`(?s)\b(?i:`+regexp.QuoteMeta(name)+`)\s*:?\s*\n(.*?)(?:\n\s*\n|\n\s*[A-Z]|\z)`,
		))
	}
	return patterns
}

// ExtractExperienceSection returns the body of the first recognized
// experience section, or "" when the resume has none.
func ExtractExperienceSection(text string) string {
	for _, pattern := range sectionPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
