package model

import "time"

// BlogPost 博客文章 管理员撰写，支持定时发布
// swagger:model BlogPost
type BlogPost struct {
	BaseModel
	AuthorID    uint       `gorm:"index;type:bigint unsigned;not null" json:"authorId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Summary     string     `gorm:"size:500" json:"summary"`
	Content     string     `gorm:"type:longtext" json:"content"`
	CoverImage  string     `gorm:"size:255" json:"coverImage"`
	Published   bool       `gorm:"default:false;index" json:"published"`
	PublishAt   *time.Time `gorm:"index" json:"publishAt,omitempty"` // 为空表示手动发布
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
