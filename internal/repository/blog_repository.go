package repository

import (
	"time"

	"tutorhub_backend/internal/model"

	"gorm.io/gorm"
)

type BlogRepository struct {
	DB *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

func (r *BlogRepository) Create(post *model.BlogPost) error {
	return r.DB.Create(post).Error
}

func (r *BlogRepository) Save(post *model.BlogPost) error {
	return r.DB.Save(post).Error
}

func (r *BlogRepository) FindByID(id uint) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.DB.First(&post, id).Error
	return &post, err
}

func (r *BlogRepository) FindBySlug(slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.DB.Where("slug = ?", slug).First(&post).Error
	return &post, err
}

func (r *BlogRepository) ListPublished(page, limit int) ([]model.BlogPost, int64, error) {
	var posts []model.BlogPost
	var total int64

	query := r.DB.Model(&model.BlogPost{}).Where("published = ?", true)
	query.Count(&total)

	err := query.Order("published_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *BlogRepository) ListAll(page, limit int) ([]model.BlogPost, int64, error) {
	var posts []model.BlogPost
	var total int64

	r.DB.Model(&model.BlogPost{}).Count(&total)

	err := r.DB.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// FindDuePublishes 到了预定发布时间但还未发布的文章
func (r *BlogRepository) FindDuePublishes(now time.Time) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := r.DB.Where("published = ? AND publish_at IS NOT NULL AND publish_at <= ?", false, now).
		Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) Delete(id uint) error {
	return r.DB.Delete(&model.BlogPost{}, id).Error
}
