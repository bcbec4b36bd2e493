package repository

import (
	"tutorhub_backend/internal/model"

	"gorm.io/gorm"
)

type XPTransactionRepository struct {
	DB *gorm.DB
}

func NewXPTransactionRepository(db *gorm.DB) *XPTransactionRepository {
	return &XPTransactionRepository{DB: db}
}

// Append 写入一条流水 流水只追加，不提供更新和删除
func (r *XPTransactionRepository) Append(tx *gorm.DB, t *model.XPTransaction) error {
	return tx.Create(t).Error
}

func (r *XPTransactionRepository) FindRecentByUser(userID uint, limit int) ([]model.XPTransaction, error) {
	var txs []model.XPTransaction
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txs).Error
	return txs, err
}
