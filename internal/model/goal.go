package model

import "time"

type GoalStatus string

const (
	GoalPending    GoalStatus = "pending"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
)

type Goal struct {
	BaseModel
	UserID      uint       `gorm:"index;type:bigint unsigned" json:"userId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      GoalStatus `gorm:"type:enum('pending','in_progress','completed');default:'pending'" json:"status"`
	Current     int        `gorm:"default:0" json:"current"`
	Target      int        `gorm:"not null" json:"target"`
	TargetDate  time.Time  `gorm:"type:datetime" json:"targetDate"`
}

func (Goal) TableName() string {
	return "goals"
}
