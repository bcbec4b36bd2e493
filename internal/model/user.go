package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Tutor   UserRole = "tutor"
	Admin   UserRole = "admin"
)

// User 平台用户 账号与身份由外部身份提供商管理，这里只保存业务侧信息
// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Role     UserRole `gorm:"type:enum('student','tutor','admin');default:'student'" json:"role"`
	Avatar   string   `gorm:"size:255" json:"avatar"`
	Language string   `gorm:"size:10;default:'en'" json:"language"`
	Disabled bool     `gorm:"default:false" json:"disabled"`
	LastSeen time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
