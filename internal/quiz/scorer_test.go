package quiz

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{ID: uint(i + 1), Prompt: fmt.Sprintf("q%d", i+1), Expected: fmt.Sprintf("a%d", i+1)}
	}
	return qs
}

func TestScoreEmptyQuizRejected(t *testing.T) {
	_, err := Score(nil, nil, time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestScoreTenQuestions(t *testing.T) {
	// 10 题：7 对 2 错 1 空 -> accuracy 70
	qs := questions(10)
	answers := make([]string, 10)
	for i := 0; i < 7; i++ {
		answers[i] = qs[i].Expected
	}
	answers[7] = "nope"
	answers[8] = "nope"
	answers[9] = ""

	start := time.Now()
	res, err := Score(qs, answers, start, start.Add(95*time.Second))
	require.NoError(t, err)

	assert.Equal(t, 10, res.TotalQuestions)
	assert.Equal(t, 7, res.CorrectAnswers)
	assert.Equal(t, 2, res.WrongAnswers)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 70, res.Accuracy)
	assert.Equal(t, 95, res.TimeTakenSeconds)
	assert.Equal(t, OutcomeSkipped, res.Breakdown[9].Outcome)
}

func TestScoreInvariantHolds(t *testing.T) {
	cases := [][]string{
		{"a1", "a2", "a3"},
		{"", "", ""},
		{"x", "a2", ""},
		{"a1"},
	}
	qs := questions(3)
	for _, answers := range cases {
		res, err := Score(qs, answers, time.Now(), time.Now())
		require.NoError(t, err)
		assert.Equal(t, res.TotalQuestions, res.CorrectAnswers+res.WrongAnswers+res.Skipped)
		assert.GreaterOrEqual(t, res.Accuracy, 0)
		assert.LessOrEqual(t, res.Accuracy, 100)
	}
}

func TestScoreExactStringMatch(t *testing.T) {
	// 精确匹配：大小写和空白差异都算错，这是刻意保留的口径
	qs := []Question{{ID: 1, Expected: "B) Paris"}}
	for _, submitted := range []string{"b) paris", "B) Paris ", " B) Paris", "Paris"} {
		res, err := Score(qs, []string{submitted}, time.Now(), time.Now())
		require.NoError(t, err)
		assert.Equal(t, 1, res.WrongAnswers, "submitted=%q", submitted)
	}

	res, err := Score(qs, []string{"B) Paris"}, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, res.CorrectAnswers)
	assert.Equal(t, 100, res.Accuracy)
}

func TestScoreAccuracyRounding(t *testing.T) {
	qs := questions(3)
	res, err := Score(qs, []string{"a1", "a2", "x"}, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 67, res.Accuracy) // round(200/3)

	res, err = Score(qs, []string{"a1", "x", "x"}, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 33, res.Accuracy)
}

func TestScoreClockSkewClamped(t *testing.T) {
	qs := questions(1)
	start := time.Now()
	res, err := Score(qs, []string{"a1"}, start, start.Add(-30*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, res.TimeTakenSeconds)
}

func TestScoreMissingAnswersAreSkipped(t *testing.T) {
	qs := questions(4)
	res, err := Score(qs, []string{"a1"}, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, res.CorrectAnswers)
	assert.Equal(t, 3, res.Skipped)
}
