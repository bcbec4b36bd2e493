package quiz

import "time"

type State string

const (
	StateNotStarted State = "not_started"
	StateStudying   State = "studying"
	StateAnswering  State = "answering"
	StateSubmitted  State = "submitted"
)

// Attempt 单次答题的状态机：
// NotStarted -> Studying（看第一张闪卡）-> Answering（所有闪卡看完后）
// -> Submitted（终态，重复提交报 ErrAlreadySubmitted）。
// Answering 阶段可以任意往返、反复改答案，判分只看提交那一刻的答案。
type Attempt struct {
	State       State
	Questions   []Question
	Answers     []string // "" 表示未作答
	Viewed      []bool
	StartedAt   time.Time
	SubmittedAt time.Time
	Result      *Result
}

func NewAttempt(questions []Question, startedAt time.Time) *Attempt {
	return &Attempt{
		State:     StateNotStarted,
		Questions: questions,
		Answers:   make([]string, len(questions)),
		Viewed:    make([]bool, len(questions)),
		StartedAt: startedAt,
	}
}

// Rehydrate 从持久化快照恢复状态机
func Rehydrate(questions []Question, state State, viewed []bool, answers []string, startedAt time.Time) *Attempt {
	a := NewAttempt(questions, startedAt)
	a.State = state
	copy(a.Viewed, viewed)
	copy(a.Answers, answers)
	return a
}

// ViewCard 记录一张闪卡被看过 第一次看卡把状态推进到 Studying
func (a *Attempt) ViewCard(idx int) error {
	if a.State == StateSubmitted {
		return ErrAlreadySubmitted
	}
	if idx < 0 || idx >= len(a.Questions) {
		return ErrQuestionIndex
	}
	if a.State == StateNotStarted {
		a.State = StateStudying
	}
	a.Viewed[idx] = true
	return nil
}

// AllCardsViewed 是否所有闪卡都至少看过一次
func (a *Attempt) AllCardsViewed() bool {
	for _, v := range a.Viewed {
		if !v {
			return false
		}
	}
	return len(a.Viewed) > 0
}

// BeginAnswering 从学习阶段进入答题阶段 要求所有闪卡都看过
func (a *Attempt) BeginAnswering() error {
	switch a.State {
	case StateSubmitted:
		return ErrAlreadySubmitted
	case StateAnswering:
		return nil
	}
	if !a.AllCardsViewed() {
		return ErrCardsRemaining
	}
	a.State = StateAnswering
	return nil
}

// SetAnswer 记录或覆盖某题答案 仅答题阶段可用
func (a *Attempt) SetAnswer(idx int, answer string) error {
	if a.State == StateSubmitted {
		return ErrAlreadySubmitted
	}
	if a.State != StateAnswering {
		return ErrNotAnswering
	}
	if idx < 0 || idx >= len(a.Questions) {
		return ErrQuestionIndex
	}
	a.Answers[idx] = answer
	return nil
}

// Submit 以当前答案判分并进入终态 重复提交不会重新判分
func (a *Attempt) Submit(now time.Time) (*Result, error) {
	if a.State == StateSubmitted {
		return nil, ErrAlreadySubmitted
	}
	if a.State != StateAnswering {
		return nil, ErrNotAnswering
	}

	res, err := Score(a.Questions, a.Answers, a.StartedAt, now)
	if err != nil {
		return nil, err
	}

	a.State = StateSubmitted
	a.SubmittedAt = now
	a.Result = res
	return res, nil
}
