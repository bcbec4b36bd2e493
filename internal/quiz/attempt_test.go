package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studyAll(t *testing.T, a *Attempt) {
	t.Helper()
	for i := range a.Questions {
		require.NoError(t, a.ViewCard(i))
	}
}

func TestAttemptHappyPath(t *testing.T) {
	start := time.Now()
	a := NewAttempt(questions(3), start)
	require.Equal(t, StateNotStarted, a.State)

	require.NoError(t, a.ViewCard(0))
	assert.Equal(t, StateStudying, a.State)

	// 没看完所有闪卡不能进入答题
	assert.ErrorIs(t, a.BeginAnswering(), ErrCardsRemaining)

	studyAll(t, a)
	require.NoError(t, a.BeginAnswering())
	assert.Equal(t, StateAnswering, a.State)

	require.NoError(t, a.SetAnswer(0, "a1"))
	require.NoError(t, a.SetAnswer(1, "wrong"))
	// 答题阶段可以反复改
	require.NoError(t, a.SetAnswer(1, "a2"))

	res, err := a.Submit(start.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, a.State)
	assert.Equal(t, 2, res.CorrectAnswers)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 60, res.TimeTakenSeconds)
}

func TestAttemptDoubleSubmit(t *testing.T) {
	a := NewAttempt(questions(2), time.Now())
	studyAll(t, a)
	require.NoError(t, a.BeginAnswering())
	require.NoError(t, a.SetAnswer(0, "a1"))

	first, err := a.Submit(time.Now())
	require.NoError(t, err)

	// 重复提交报错，且第一次的结果原样保留
	_, err = a.Submit(time.Now())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Same(t, first, a.Result)
	assert.Equal(t, 1, a.Result.CorrectAnswers)
}

func TestAttemptGuardsAfterSubmit(t *testing.T) {
	a := NewAttempt(questions(1), time.Now())
	studyAll(t, a)
	require.NoError(t, a.BeginAnswering())
	_, err := a.Submit(time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, a.ViewCard(0), ErrAlreadySubmitted)
	assert.ErrorIs(t, a.SetAnswer(0, "x"), ErrAlreadySubmitted)
	assert.ErrorIs(t, a.BeginAnswering(), ErrAlreadySubmitted)
}

func TestAttemptCannotAnswerWhileStudying(t *testing.T) {
	a := NewAttempt(questions(2), time.Now())
	require.NoError(t, a.ViewCard(0))
	assert.ErrorIs(t, a.SetAnswer(0, "a1"), ErrNotAnswering)
}

func TestAttemptCannotSubmitBeforeAnswering(t *testing.T) {
	a := NewAttempt(questions(2), time.Now())
	_, err := a.Submit(time.Now())
	assert.ErrorIs(t, err, ErrNotAnswering)
}

func TestAttemptViewCardBounds(t *testing.T) {
	a := NewAttempt(questions(2), time.Now())
	assert.ErrorIs(t, a.ViewCard(-1), ErrQuestionIndex)
	assert.ErrorIs(t, a.ViewCard(2), ErrQuestionIndex)
}

func TestAttemptBeginAnsweringIdempotent(t *testing.T) {
	a := NewAttempt(questions(1), time.Now())
	studyAll(t, a)
	require.NoError(t, a.BeginAnswering())
	require.NoError(t, a.BeginAnswering())
	assert.Equal(t, StateAnswering, a.State)
}

func TestRehydrate(t *testing.T) {
	qs := questions(2)
	a := Rehydrate(qs, StateAnswering, []bool{true, true}, []string{"a1", ""}, time.Now())
	require.Equal(t, StateAnswering, a.State)

	res, err := a.Submit(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, res.CorrectAnswers)
	assert.Equal(t, 1, res.Skipped)
}
