package model

import "time"

// Quiz 一套测验 题目由 AI 生成或管理员录入，先闪卡学习再答题
// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title      string         `gorm:"size:255;not null" json:"title"`
	Subject    string         `gorm:"size:100;index" json:"subject"`
	Difficulty string         `gorm:"size:20;default:'medium'" json:"difficulty"`
	CreatedBy  uint           `gorm:"type:bigint unsigned" json:"createdBy"`
	Questions  []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion 单道题目 Answer 保存的是正确选项的完整文本，
// 判分时与提交文本做精确比较
type QuizQuestion struct {
	BaseModel
	QuizID   uint       `gorm:"index;not null" json:"quizId"`
	Prompt   string     `gorm:"type:text;not null" json:"prompt"`
	Options  StringList `gorm:"serializer:json" json:"options"`
	Answer   string     `gorm:"size:500;not null" json:"answer"`
	Position int        `gorm:"default:0" json:"position"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

type AttemptState string

const (
	AttemptNotStarted AttemptState = "not_started"
	AttemptStudying   AttemptState = "studying"
	AttemptAnswering  AttemptState = "answering"
	AttemptSubmitted  AttemptState = "submitted"
)

// QuizAttempt 一次答题 保存状态机快照，提交后不可再变更
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	UserID      uint         `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	QuizID      uint         `gorm:"index;not null" json:"quizId"`
	State       AttemptState `gorm:"size:20;default:'not_started'" json:"state"`
	CardsViewed BoolList     `gorm:"serializer:json" json:"cardsViewed"`
	Answers     StringList   `gorm:"serializer:json" json:"answers"`
	StartedAt   time.Time    `json:"startedAt"`
	SubmittedAt *time.Time   `json:"submittedAt,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizResult 判分结果 每次提交生成一条，之后不再修改
// swagger:model QuizResult
type QuizResult struct {
	BaseModel
	AttemptID        uint       `gorm:"uniqueIndex;not null" json:"attemptId"`
	UserID           uint       `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	QuizID           uint       `gorm:"index;not null" json:"quizId"`
	TotalQuestions   int        `gorm:"not null" json:"totalQuestions"`
	CorrectAnswers   int        `gorm:"not null" json:"correctAnswers"`
	WrongAnswers     int        `gorm:"not null" json:"wrongAnswers"`
	Skipped          int        `gorm:"not null" json:"skipped"`
	Accuracy         int        `gorm:"not null" json:"accuracy"` // 0-100
	TimeTakenSeconds int        `gorm:"not null" json:"timeTakenSeconds"`
	Breakdown        StringList `gorm:"serializer:json" json:"breakdown"` // 每题判定: correct/wrong/skipped
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

type StringList []string

type BoolList []bool
