package repository

import (
	"time"

	"tutorhub_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.TutoringSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByID(id uint) (*model.TutoringSession, error) {
	var session model.TutoringSession
	err := r.DB.First(&session, id).Error
	return &session, err
}

func (r *SessionRepository) Save(session *model.TutoringSession) error {
	return r.DB.Save(session).Error
}

func (r *SessionRepository) FindByStudent(studentID uint) ([]model.TutoringSession, error) {
	var sessions []model.TutoringSession
	err := r.DB.Where("student_id = ?", studentID).
		Order("scheduled_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) FindByTutor(tutorID uint) ([]model.TutoringSession, error) {
	var sessions []model.TutoringSession
	err := r.DB.Where("tutor_id = ?", tutorID).
		Order("scheduled_at DESC").
		Find(&sessions).Error
	return sessions, err
}

// CountOverlapping 统计导师在给定时间段内已有的未取消预约
func (r *SessionRepository) CountOverlapping(tutorID uint, start time.Time, durationMinutes int) (int64, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	var count int64
	err := r.DB.Model(&model.TutoringSession{}).
		Where("tutor_id = ? AND status = ?", tutorID, model.SessionBooked).
		Where("scheduled_at < ? AND DATE_ADD(scheduled_at, INTERVAL duration_minutes MINUTE) > ?", end, start).
		Count(&count).Error
	return count, err
}
