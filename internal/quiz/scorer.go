// Package quiz 实现测验的答题状态机和判分。
// 与 gamification 一样是纯逻辑：判分只依赖输入，
// 经验值入账由调用方拿着结果去调进度账本。
package quiz

import (
	"errors"
	"math"
	"time"
)

var (
	ErrNoQuestions      = errors.New("quiz has no questions to score")
	ErrAlreadySubmitted = errors.New("quiz attempt already submitted")
	ErrCardsRemaining   = errors.New("not all flashcards have been viewed")
	ErrNotAnswering     = errors.New("attempt is not in the answering phase")
	ErrQuestionIndex    = errors.New("question index out of range")
)

type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
	OutcomeSkipped Outcome = "skipped"
)

// Question 参与判分的一道题
type Question struct {
	ID       uint
	Prompt   string
	Options  []string
	Expected string
}

// QuestionResult 单题判定
type QuestionResult struct {
	QuestionID uint    `json:"questionId"`
	Submitted  string  `json:"submitted"`
	Outcome    Outcome `json:"outcome"`
}

// Result 一次提交的判分结果 恒有 Correct+Wrong+Skipped == Total
type Result struct {
	TotalQuestions   int              `json:"totalQuestions"`
	CorrectAnswers   int              `json:"correctAnswers"`
	WrongAnswers     int              `json:"wrongAnswers"`
	Skipped          int              `json:"skipped"`
	Accuracy         int              `json:"accuracy"` // 0-100
	TimeTakenSeconds int              `json:"timeTakenSeconds"`
	Breakdown        []QuestionResult `json:"breakdown"`
}

// Score 对一组题目和提交的答案判分。
// 判定用精确的字符串相等（区分大小写、不做任何归一化），
// 改动匹配规则会悄悄改变历史判分口径，所以这里刻意保持原样。
// 空答案计为 skipped。时钟回拨导致的负耗时钳到 0。
func Score(questions []Question, answers []string, startedAt, submittedAt time.Time) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	res := &Result{
		TotalQuestions: len(questions),
		Breakdown:      make([]QuestionResult, len(questions)),
	}

	for i, q := range questions {
		submitted := ""
		if i < len(answers) {
			submitted = answers[i]
		}

		outcome := OutcomeWrong
		switch {
		case submitted == "":
			outcome = OutcomeSkipped
			res.Skipped++
		case submitted == q.Expected:
			outcome = OutcomeCorrect
			res.CorrectAnswers++
		default:
			res.WrongAnswers++
		}

		res.Breakdown[i] = QuestionResult{QuestionID: q.ID, Submitted: submitted, Outcome: outcome}
	}

	res.Accuracy = int(math.Round(100 * float64(res.CorrectAnswers) / float64(res.TotalQuestions)))

	elapsed := int(submittedAt.Sub(startedAt).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	res.TimeTakenSeconds = elapsed

	return res, nil
}
