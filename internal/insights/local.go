package insights

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// passiveIndicators match the common English passive-voice constructions.
var passiveIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:am|is|are|was|were|be|being|been)\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\b(?:has|have|had)\s+been\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\b(?:will|shall|should|would|could|might|must)\s+be\s+\w+ed\b`),
}

const (
	// maxPassiveExamples caps the reported passive-sentence rewrites.
	maxPassiveExamples = 3
	// minSentenceWords excludes fragments from the passive-voice ratio.
	minSentenceWords = 3
	// relatedTermScore is the similarity assigned to two distinct terms
	// sharing a topic in the lexicon.
	relatedTermScore = 0.9
)

// Local is the deterministic, dependency-free provider. It supplies the
// documented degradation defaults (no key phrases, neutral sentiment), a
// regex-based passive-voice analyzer, and a lexical similarity built from a
// topic lexicon and character bigrams. It never returns an error.
type Local struct{}

// NewLocal returns the local provider.
func NewLocal() *Local {
	return &Local{}
}

// KeyPhrases returns no phrases; the local provider has no phrase model and
// extraction proceeds on full text alone.
func (*Local) KeyPhrases(_ context.Context, _ string) ([]string, error) {
	return []string{}, nil
}

// Sentiment always reports neutral.
func (*Local) Sentiment(_ context.Context, _ string) (types.Sentiment, error) {
	return types.NeutralSentiment(), nil
}

// TextQuality detects passive voice with indicator patterns, reporting the
// passive ratio over non-trivial sentences and up to three rewrite examples.
func (*Local) TextQuality(_ context.Context, text string) (types.TextQuality, error) {
	sentences := splitSentences(text)

	total := 0
	passive := 0
	examples := make([]types.PassiveExample, 0, maxPassiveExamples)

	for _, sentence := range sentences {
		if len(strings.Fields(sentence)) < minSentenceWords {
			continue
		}
		total++

		match := findPassive(sentence)
		if match == "" {
			continue
		}
		passive++

		if len(examples) < maxPassiveExamples {
			examples = append(examples, types.PassiveExample{
				Original:   sentence,
				Suggestion: strings.Replace(sentence, match, "actively did", 1),
			})
		}
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(passive) / float64(total)
	}

	return types.TextQuality{PassiveVoiceRatio: ratio, PassiveExamples: examples}, nil
}

// findPassive returns the first passive construction in the sentence, or "".
func findPassive(sentence string) string {
	for _, re := range passiveIndicators {
		if m := re.FindString(sentence); m != "" {
			return m
		}
	}
	return ""
}

// splitSentences breaks text after terminal punctuation followed by
// whitespace.
func splitSentences(text string) []string {
	var sentences []string
	var sb strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		sb.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\t' || runes[i+1] == '\n' || runes[i+1] == '\r' {
				s := strings.TrimSpace(sb.String())
				if s != "" {
					sentences = append(sentences, s)
				}
				sb.Reset()
			}
		}
	}
	if s := strings.TrimSpace(sb.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// topicLexicon tags well-known single-word tech terms with a coarse topic so
// the fallback can relate terms that share no characters (rest and django)
// while keeping unrelated stacks apart (postgresql and python). Terms outside
// the lexicon only relate through character overlap.
var topicLexicon = map[string]string{
	// web frameworks, api styles, frontend libraries
	"django": "web", "flask": "web", "rails": "web", "express": "web",
	"fastapi": "web", "laravel": "web", "spring": "web",
	"rest": "web", "restful": "web", "graphql": "web", "soap": "web",
	"grpc": "web", "http": "web", "ajax": "web",
	"react": "web", "angular": "web", "vue": "web", "jquery": "web",

	// database engines
	"sql": "database", "mysql": "database", "postgresql": "database",
	"postgres": "database", "sqlite": "database", "mariadb": "database",
	"oracle": "database", "mongodb": "database", "cassandra": "database",
	"redis": "database", "dynamodb": "database", "elasticsearch": "database",

	// containers and automation
	"docker": "devops", "kubernetes": "devops", "k8s": "devops",
	"helm": "devops", "terraform": "devops", "ansible": "devops",
	"jenkins": "devops",

	// cloud providers
	"aws": "cloud", "azure": "cloud", "gcp": "cloud", "heroku": "cloud",

	// ml ecosystem
	"tensorflow": "ml", "pytorch": "ml", "keras": "ml",
	"scikit-learn": "ml", "pandas": "ml", "numpy": "ml",
}

var tokenRe = regexp.MustCompile(`[a-z0-9#+-]+`)

// Similarity scores two texts deterministically without a model, clamped to
// [0,1] by construction. Two identical single terms score 1; two distinct
// single terms sharing a lexicon topic score relatedTermScore; everything else
// gets the cosine similarity of the texts' character-bigram sets. This is the
// non-ML fallback that keeps the pipeline functional, and discriminating,
// without an embedding backend.
func (*Local) Similarity(_ context.Context, a, b string) (float64, error) {
	ta := tokenizeText(a)
	tb := tokenizeText(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0, nil
	}

	if len(ta) == 1 && len(tb) == 1 {
		if ta[0] == tb[0] {
			return 1, nil
		}
		topicA, okA := topicLexicon[ta[0]]
		topicB, okB := topicLexicon[tb[0]]
		if okA && okB && topicA == topicB {
			return relatedTermScore, nil
		}
	}

	return bigramCosine(ta, tb), nil
}

func tokenizeText(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// bigramCosine computes |A∩B| / sqrt(|A|·|B|) over the union of per-token
// character-bigram sets. Single-character tokens contribute themselves.
func bigramCosine(ta, tb []string) float64 {
	sa := bigramSet(ta)
	sb := bigramSet(tb)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}

	shared := 0
	for g := range sa {
		if _, ok := sb[g]; ok {
			shared++
		}
	}
	return float64(shared) / math.Sqrt(float64(len(sa))*float64(len(sb)))
}

func bigramSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokens {
		runes := []rune(tok)
		if len(runes) < 2 {
			set[tok] = struct{}{}
			continue
		}
		for i := 0; i+2 <= len(runes); i++ {
			set[string(runes[i:i+2])] = struct{}{}
		}
	}
	return set
}
