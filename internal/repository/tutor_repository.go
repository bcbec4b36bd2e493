package repository

import (
	"tutorhub_backend/internal/model"

	"gorm.io/gorm"
)

type TutorRepository struct {
	DB *gorm.DB
}

func NewTutorRepository(db *gorm.DB) *TutorRepository {
	return &TutorRepository{DB: db}
}

func (r *TutorRepository) FindByUserID(userID uint) (*model.TutorProfile, error) {
	var profile model.TutorProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *TutorRepository) Upsert(profile *model.TutorProfile) error {
	var existing model.TutorProfile
	err := r.DB.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	return r.DB.Save(profile).Error
}

// Search 按学科搜索导师 学科存 JSON，用 LIKE 过滤后在内存里精确匹配
func (r *TutorRepository) Search(subject string, page, limit int) ([]model.TutorProfile, int64, error) {
	var profiles []model.TutorProfile
	var total int64

	query := r.DB.Model(&model.TutorProfile{}).Where("verified = ?", true)
	if subject != "" {
		query = query.Where("subjects LIKE ?", "%"+subject+"%")
	}
	query.Count(&total)

	err := query.Order("hourly_rate ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&profiles).Error
	return profiles, total, err
}

func (r *TutorRepository) SetVerified(userID uint, verified bool) error {
	return r.DB.Model(&model.TutorProfile{}).
		Where("user_id = ?", userID).
		Update("verified", verified).
		Error
}
