// Package parsing provides technical-term canonicalization and string
// similarity primitives used by skill matching.
package parsing

import (
	"regexp"
	"strings"
)

// vendorPrefixes are stripped from the front of a term; they rarely change the
// core technology being named.
var vendorPrefixes = []string{
	"ms ", "microsoft ", "google ", "apache ", "aws ", "azure ", "ibm ",
}

var (
	versionSuffixRe = regexp.MustCompile(`\s+\d+(\.\d+)*`)
	genericSuffixRe = regexp.MustCompile(`\s+(framework|library|language|platform)$`)
	nonWordRe       = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// termVariants maps canonical base terms to their common aliases. Both sides
// are compared with '-', '.' and spaces stripped.
var termVariants = map[string][]string{
	"javascript":                  {"js"},
	"typescript":                  {"ts"},
	"python":                      {"py"},
	"react":                       {"reactjs", "react.js"},
	"node":                        {"nodejs", "node.js"},
	"angular":                     {"angularjs", "angular.js"},
	"vue":                         {"vuejs", "vue.js"},
	"dotnet":                      {"dot net", ".net", "net framework"},
	"csharp":                      {"c#", "c sharp"},
	"cplusplus":                   {"c++", "cpp"},
	"objective-c":                 {"objective c", "objectivec"},
	"machine learning":            {"ml"},
	"artificial intelligence":     {"ai"},
	"natural language processing": {"nlp"},
	"kubernetes":                  {"k8s"},
	"database":                    {"db"},
}

// acronymMaxLen is the length at or below which a term is treated as a
// potential acronym.
const acronymMaxLen = 5

// Normalize canonicalizes a technical term: lowercase, vendor prefixes and
// version/generic suffixes stripped, punctuation removed, whitespace collapsed.
func Normalize(term string) string {
	normalized := strings.ToLower(term)

	// Stacked prefixes fall away in list order ("microsoft azure devops"
	// loses both vendors).
	for _, prefix := range vendorPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			normalized = normalized[len(prefix):]
		}
	}

	normalized = versionSuffixRe.ReplaceAllString(normalized, "")
	normalized = genericSuffixRe.ReplaceAllString(normalized, "")
	normalized = nonWordRe.ReplaceAllString(normalized, "")
	normalized = whitespaceRe.ReplaceAllString(normalized, " ")

	return strings.TrimSpace(normalized)
}

// IsAcronymMatch reports whether one normalized term is an acronym of the
// other. Two short terms must match exactly; a short term matches a longer one
// when it equals the first letters of the longer term's words. Symmetric.
func IsAcronymMatch(a, b string) bool {
	if len(a) <= acronymMaxLen && len(b) <= acronymMaxLen {
		return a == b
	}

	if len(a) <= acronymMaxLen && len(b) > acronymMaxLen {
		return a == acronymOf(b)
	}
	if len(b) <= acronymMaxLen && len(a) > acronymMaxLen {
		return b == acronymOf(a)
	}

	return false
}

// acronymOf builds the lowercase first-letter acronym of a multi-word term.
func acronymOf(term string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(term) {
		sb.WriteByte(word[0])
	}
	return strings.ToLower(sb.String())
}

// AreKnownVariants reports whether two terms resolve to the same known
// technology via the variant table (e.g. javascript vs js, k8s vs kubernetes).
func AreKnownVariants(a, b string) bool {
	ca := compactTerm(a)
	cb := compactTerm(b)

	for base, variants := range termVariants {
		if matchesVariant(ca, base, variants) && matchesVariant(cb, base, variants) {
			return true
		}
	}
	return false
}

func compactTerm(term string) string {
	r := strings.NewReplacer("-", "", ".", "", " ", "")
	return r.Replace(term)
}

func matchesVariant(compact, base string, variants []string) bool {
	if compact == compactTerm(base) {
		return true
	}
	for _, v := range variants {
		if compact == compactTerm(v) {
			return true
		}
	}
	return false
}
