// Package extraction derives the technical and soft skills present in a
// document from the taxonomy catalog, supplied key phrases, and compound
// pattern rules.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

const (
	// minPhraseWords and maxPhraseWords bound key phrases promoted to
	// skills on technical context.
	minPhraseWords = 2
	maxPhraseWords = 5
)

// Extractor finds skills in documents. It holds only the shared read-only
// catalog and a cache of compiled vocabulary patterns, so a single Extractor
// serves concurrent analyses.
type Extractor struct {
	catalog    *taxonomy.Catalog
	vocabRegex map[string]*regexp.Regexp
}

// New creates an Extractor over the given catalog, pre-compiling a
// word-boundary pattern per vocabulary term.
func New(catalog *taxonomy.Catalog) *Extractor {
	vocab := catalog.Vocabulary()
	compiled := make(map[string]*regexp.Regexp, len(vocab))
	for _, term := range vocab {
		compiled[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return &Extractor{catalog: catalog, vocabRegex: compiled}
}

// Technical extracts technical skills from key phrases and the full document
// text. Vocabulary matches come first in catalog order, then contextual key
// phrases, then compound pattern matches; duplicates are suppressed
// case-insensitively at insertion. The result is never nil.
func (e *Extractor) Technical(keyPhrases []string, fullText string) []string {
	skills := []string{}
	seen := make(map[string]struct{})

	add := func(skill string) {
		key := strings.ToLower(skill)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		skills = append(skills, skill)
	}

	// 1. Vocabulary terms found in any key phrase or in the full text.
	for _, term := range e.catalog.Vocabulary() {
		re := e.vocabRegex[term]
		if matchesAnyPhrase(re, keyPhrases) || re.MatchString(fullText) {
			add(term)
		}
	}

	// 2. Multi-word key phrases carrying technical context, verbatim.
	for _, phrase := range keyPhrases {
		words := strings.Fields(strings.ToLower(phrase))
		if len(words) < minPhraseWords || len(words) > maxPhraseWords {
			continue
		}
		if e.hasContextWord(words) {
			add(phrase)
		}
	}

	// 3. Compound pattern matches over the lowercased text.
	lowerText := strings.ToLower(fullText)
	for _, pattern := range e.catalog.Patterns() {
		for _, match := range pattern.FindAllString(lowerText, -1) {
			if skill := strings.TrimSpace(match); skill != "" {
				add(skill)
			}
		}
	}

	return skills
}

func matchesAnyPhrase(re *regexp.Regexp, phrases []string) bool {
	for _, phrase := range phrases {
		if re.MatchString(phrase) {
			return true
		}
	}
	return false
}

func (e *Extractor) hasContextWord(words []string) bool {
	for _, w := range words {
		if e.catalog.IsContextWord(w) {
			return true
		}
	}
	return false
}

// Soft extracts soft skills by case-insensitive substring search, accepting
// the hyphen-to-space variant of each catalog phrase. The result is never nil.
func (e *Extractor) Soft(text string) []string {
	lower := strings.ToLower(text)

	found := []string{}
	for _, skill := range e.catalog.SoftSkills() {
		if strings.Contains(lower, skill) || strings.Contains(lower, strings.ReplaceAll(skill, "-", " ")) {
			found = append(found, skill)
		}
	}
	return found
}
