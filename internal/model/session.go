package model

import "time"

type SessionStatus string

const (
	SessionBooked    SessionStatus = "booked"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// TutoringSession 一次辅导预约 完成时给学生记经验值和学时
// swagger:model TutoringSession
type TutoringSession struct {
	BaseModel
	StudentID       uint          `gorm:"index;type:bigint unsigned;not null" json:"studentId"`
	TutorID         uint          `gorm:"index;type:bigint unsigned;not null" json:"tutorId"`
	Subject         string        `gorm:"size:100;not null" json:"subject"`
	ScheduledAt     time.Time     `gorm:"not null;index" json:"scheduledAt"`
	DurationMinutes int           `gorm:"not null" json:"durationMinutes"`
	Status          SessionStatus `gorm:"type:enum('booked','completed','cancelled');default:'booked'" json:"status"`
	MeetingURL      string        `gorm:"size:255" json:"meetingUrl"`
	Notes           string        `gorm:"type:text" json:"notes"`
	CompletedAt     *time.Time    `json:"completedAt,omitempty"`
}

func (TutoringSession) TableName() string {
	return "tutoring_sessions"
}
