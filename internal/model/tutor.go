package model

// TutorProfile 导师主页信息 Availability 以星期几到时间段列表的形式存 JSON，
// 预约时只做粗粒度校验
// swagger:model TutorProfile
type TutorProfile struct {
	BaseModel
	UserID             uint       `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	Headline           string     `gorm:"size:255" json:"headline"`
	Bio                string     `gorm:"type:text" json:"bio"`
	Subjects           StringList `gorm:"serializer:json" json:"subjects"`
	HourlyRate         int        `gorm:"default:0" json:"hourlyRate"` // 单位：分
	IntroVideoURL      string     `gorm:"size:255" json:"introVideoUrl"`
	IntroVideoDuration int        `gorm:"default:0" json:"introVideoDuration"` // 秒
	Availability       StringList `gorm:"serializer:json" json:"availability"` // 如 "mon 18:00-21:00"
	Verified           bool       `gorm:"default:false" json:"verified"`
}

func (TutorProfile) TableName() string {
	return "tutor_profiles"
}
