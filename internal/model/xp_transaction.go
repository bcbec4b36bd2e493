package model

type TransactionKind string

const (
	TxSessionCompleted TransactionKind = "session_completed"
	TxQuizCompleted    TransactionKind = "quiz_completed"
	TxGoalAchieved     TransactionKind = "goal_achieved"
	TxStreakBonus      TransactionKind = "streak_bonus"
	TxLoginBonus       TransactionKind = "login_bonus"
	TxPerfectQuiz      TransactionKind = "perfect_quiz"
)

// XPTransaction 经验值流水 只追加的审计记录，写入后不再修改，
// 也不会被读回参与 ProgressRecord 的计算
// swagger:model XPTransaction
type XPTransaction struct {
	UUIDBase
	UserID      uint            `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Kind        TransactionKind `gorm:"size:30;not null" json:"kind"`
	XPAmount    int             `gorm:"not null" json:"xpAmount"`
	Description string          `gorm:"size:255" json:"description"`
}

func (XPTransaction) TableName() string {
	return "xp_transactions"
}
