package repository

import (
	"errors"

	"tutorhub_backend/internal/gamification"
	"tutorhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserID(userID uint) (*model.ProgressRecord, error) {
	var rec model.ProgressRecord
	err := r.DB.Where("user_id = ?", userID).First(&rec).Error
	return &rec, err
}

// LockForUpdate 在事务内对学习者的进度行加排他锁，不存在则创建。
// 同一学习者的并发入账由行锁串行化，不同学习者互不影响。
func (r *ProgressRepository) LockForUpdate(tx *gorm.DB, userID uint) (*model.ProgressRecord, error) {
	var rec model.ProgressRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 首次活动惰性创建，再取一次锁覆盖并发创建的竞态
		fresh := gamification.NewRecord(userID)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(fresh).Error; err != nil {
			return nil, err
		}
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&rec).Error
	}

	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ProgressRepository) Save(tx *gorm.DB, rec *model.ProgressRecord) error {
	return tx.Save(rec).Error
}

func (r *ProgressRepository) TopByXP(limit int) ([]model.ProgressRecord, error) {
	var recs []model.ProgressRecord
	err := r.DB.Order("xp DESC").Limit(limit).Find(&recs).Error
	return recs, err
}
