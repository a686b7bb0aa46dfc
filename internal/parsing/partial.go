package parsing

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// substringScore is returned when one raw term contains the other.
const substringScore = 0.85

// maxScorerInput bounds the edit-distance input size; pathologically long
// terms fall through to the matching-blocks scorer.
const maxScorerInput = 512

// StringScorer computes a similarity in [0,1] between two lowercased strings.
// Implementations that cannot handle an input return an error so the caller
// can fall through to the next scorer.
type StringScorer interface {
	Score(a, b string) (float64, error)
}

// defaultScorers is the ordered strategy list for partial matching: the
// edit-distance library first, the matching-blocks ratio as the fallback that
// never fails.
var defaultScorers = []StringScorer{
	editDistanceScorer{},
	matchingBlocksScorer{},
}

// PartialMatchScore scores how closely two raw terms match as strings.
// Substring containment in either direction scores a flat 0.85; otherwise the
// first scorer in the strategy list that succeeds decides. Symmetric.
func PartialMatchScore(a, b string) float64 {
	s1 := strings.ToLower(a)
	s2 := strings.ToLower(b)

	if s1 == "" || s2 == "" {
		return 0
	}

	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return substringScore
	}

	for _, scorer := range defaultScorers {
		score, err := scorer.Score(s1, s2)
		if err != nil {
			continue
		}
		return clamp01(score)
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// editDistanceScorer scores via normalized Levenshtein distance: 1 minus the
// edit distance divided by the longer string's length.
type editDistanceScorer struct{}

func (editDistanceScorer) Score(a, b string) (float64, error) {
	if len(a) > maxScorerInput || len(b) > maxScorerInput {
		return 0, fmt.Errorf("input exceeds %d bytes", maxScorerInput)
	}

	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0, nil
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen), nil
}

// matchingBlocksScorer scores via the ratio of recursively found longest
// matching blocks to total length, the classic sequence-matcher ratio.
type matchingBlocksScorer struct{}

func (matchingBlocksScorer) Score(a, b string) (float64, error) {
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 0, nil
	}
	matched := matchingBlockLen([]rune(a), []rune(b))
	return 2.0 * float64(matched) / float64(total), nil
}

// matchingBlockLen sums the lengths of matching blocks: find the longest
// common substring, then recurse into the pieces to its left and right.
func matchingBlockLen(a, b []rune) int {
	ai, bi, size := longestCommonRun(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingBlockLen(a[:ai], b[:bi]) +
		matchingBlockLen(a[ai+size:], b[bi+size:])
}

// longestCommonRun finds the longest common contiguous run between a and b,
// returning its start offsets and length.
func longestCommonRun(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// lengths[j] holds the run length ending at the current a index and b[j-1].
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		// Walk b backwards so lengths[j-1] still holds the previous row.
		for j := len(b); j >= 1; j-- {
			if a[i-1] == b[j-1] {
				lengths[j] = lengths[j-1] + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size
					bi = j - size
				}
			} else {
				lengths[j] = 0
			}
		}
	}
	return ai, bi, size
}
