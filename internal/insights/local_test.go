package insights

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_KeyPhrasesEmpty(t *testing.T) {
	phrases, err := NewLocal().KeyPhrases(context.Background(), "Python developer with Django experience")
	require.NoError(t, err)
	assert.Empty(t, phrases)
	assert.NotNil(t, phrases)
}

func TestLocal_SentimentNeutral(t *testing.T) {
	s, err := NewLocal().Sentiment(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "neutral", s.Sentiment)
}

func TestLocal_TextQuality_DetectsPassiveVoice(t *testing.T) {
	text := "The project was managed by the team. The system was designed for scale. Budgets were reviewed quarterly."

	q, err := NewLocal().TextQuality(context.Background(), text)
	require.NoError(t, err)

	assert.Greater(t, q.PassiveVoiceRatio, 0.3)
	require.NotEmpty(t, q.PassiveExamples)
	assert.Contains(t, q.PassiveExamples[0].Original, "was managed")
	assert.Contains(t, q.PassiveExamples[0].Suggestion, "actively did")
}

func TestLocal_TextQuality_ActiveVoiceScoresZero(t *testing.T) {
	text := "I led the migration. I shipped three releases. I mentored two engineers."

	q, err := NewLocal().TextQuality(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, 0.0, q.PassiveVoiceRatio)
	assert.Empty(t, q.PassiveExamples)
}

func TestLocal_TextQuality_CapsExamplesAtThree(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		sb.WriteString("The work was completed by the vendor on schedule. ")
	}

	q, err := NewLocal().TextQuality(context.Background(), sb.String())
	require.NoError(t, err)
	assert.Len(t, q.PassiveExamples, 3)
}

func TestLocal_TextQuality_SkipsShortSentences(t *testing.T) {
	q, err := NewLocal().TextQuality(context.Background(), "Done. Yes. Ok.")
	require.NoError(t, err)
	assert.Equal(t, 0.0, q.PassiveVoiceRatio)
}

func TestLocal_Similarity_IdenticalTextsScoreOne(t *testing.T) {
	score, err := NewLocal().Similarity(context.Background(), "python django", "python django")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestLocal_Similarity_TermsSharingTopicScoreHigh(t *testing.T) {
	l := NewLocal()

	score, err := l.Similarity(context.Background(), "rest", "django")
	require.NoError(t, err)
	assert.InDelta(t, 0.9, score, 1e-9)

	score, err = l.Similarity(context.Background(), "postgresql", "mysql")
	require.NoError(t, err)
	assert.InDelta(t, 0.9, score, 1e-9)
}

func TestLocal_Similarity_UnrelatedTermsScoreLow(t *testing.T) {
	l := NewLocal()

	score, err := l.Similarity(context.Background(), "postgresql", "python")
	require.NoError(t, err)
	assert.Less(t, score, 0.3)

	score, err = l.Similarity(context.Background(), "postgresql", "rest")
	require.NoError(t, err)
	assert.Less(t, score, 0.6)

	score, err = l.Similarity(context.Background(), "kubernetes", "leadership")
	require.NoError(t, err)
	assert.Less(t, score, 0.3)
}

func TestLocal_Similarity_EmptyTextScoresZero(t *testing.T) {
	score, err := NewLocal().Similarity(context.Background(), "", "docker")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestLocal_Similarity_BoundedAndDeterministic(t *testing.T) {
	l := NewLocal()

	first, err := l.Similarity(context.Background(), "kubernetes operator", "database administrator")
	require.NoError(t, err)
	second, err := l.Similarity(context.Background(), "kubernetes operator", "database administrator")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0.0)
	assert.LessOrEqual(t, first, 1.0)
}

func TestSplitSentences_TerminalPunctuation(t *testing.T) {
	got := splitSentences("First sentence. Second one! Third? Trailing fragment")
	require.Len(t, got, 4)
	assert.Equal(t, "First sentence.", got[0])
	assert.Equal(t, "Second one!", got[1])
	assert.Equal(t, "Third?", got[2])
	assert.Equal(t, "Trailing fragment", got[3])
}

func TestSplitSentences_DoesNotBreakVersionNumbers(t *testing.T) {
	got := splitSentences("Shipped Python 3.11 upgrades across services.")
	assert.Len(t, got, 1)
}
