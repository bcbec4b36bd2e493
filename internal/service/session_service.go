package service

import (
	"fmt"
	"math"
	"time"

	"tutorhub_backend/internal/config"
	"tutorhub_backend/internal/gamification"
	"tutorhub_backend/internal/model"
	"tutorhub_backend/internal/repository"
	"tutorhub_backend/internal/util"

	"gorm.io/gorm"
)

// SessionService 辅导预约：下单、完成、取消。
// 完成时给学生记经验值和学时，这是账本 session_completed 事件的来源。
type SessionService struct {
	SessionRepo     *repository.SessionRepository
	TutorRepo       *repository.TutorRepository
	ProgressService *ProgressService
	meetingBaseURL  string
}

func NewSessionService(
	sessionRepo *repository.SessionRepository,
	tutorRepo *repository.TutorRepository,
	progressService *ProgressService,
	cfg *config.Config,
) *SessionService {
	return &SessionService{
		SessionRepo:     sessionRepo,
		TutorRepo:       tutorRepo,
		ProgressService: progressService,
		meetingBaseURL:  cfg.Meeting.BaseURL,
	}
}

type BookSessionRequest struct {
	TutorID         uint      `json:"tutorId" binding:"required"`
	Subject         string    `json:"subject" binding:"required"`
	ScheduledAt     time.Time `json:"scheduledAt" binding:"required"`
	DurationMinutes int       `json:"durationMinutes" binding:"required,min=15,max=240"`
	Notes           string    `json:"notes"`
}

// BookSession 学生预约辅导 时间冲突时拒绝
func (s *SessionService) BookSession(studentID uint, req BookSessionRequest) (*model.TutoringSession, error) {
	if _, err := s.TutorRepo.FindByUserID(req.TutorID); err == gorm.ErrRecordNotFound {
		return nil, util.ErrTutorNotFound
	} else if err != nil {
		return nil, err
	}

	overlapping, err := s.SessionRepo.CountOverlapping(req.TutorID, req.ScheduledAt, req.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, util.ErrTutorUnavailable
	}

	session := &model.TutoringSession{
		StudentID:       studentID,
		TutorID:         req.TutorID,
		Subject:         req.Subject,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Status:          model.SessionBooked,
		MeetingURL:      fmt.Sprintf("%s/tutorhub-%s", s.meetingBaseURL, model.GenerateUUID()),
		Notes:           req.Notes,
	}

	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SessionOutcome 完成辅导后的反馈，带上学生赚到的经验值
type SessionOutcome struct {
	Session *model.TutoringSession    `json:"session"`
	Award   *gamification.AwardResult `json:"award"`
}

// CompleteSession 导师确认完成 给学生入账经验值和学时（四舍五入到小时）
func (s *SessionService) CompleteSession(tutorID, sessionID uint) (*SessionOutcome, error) {
	session, err := s.SessionRepo.FindByID(sessionID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.TutorID != tutorID {
		return nil, util.ErrPermissionDenied
	}
	if session.Status != model.SessionBooked {
		return nil, util.ErrSessionNotBooked
	}

	now := time.Now()
	session.Status = model.SessionCompleted
	session.CompletedAt = &now
	if err := s.SessionRepo.Save(session); err != nil {
		return nil, err
	}

	hours := int(math.Round(float64(session.DurationMinutes) / 60))

	award, err := s.ProgressService.AwardXP(
		session.StudentID,
		model.TxSessionCompleted,
		gamification.SessionCompletedXP,
		fmt.Sprintf("Completed %s session with tutor #%d", session.Subject, session.TutorID),
		gamification.CounterDeltas{Sessions: 1, StudyHours: hours},
	)
	if err != nil {
		return nil, err
	}

	return &SessionOutcome{Session: session, Award: award}, nil
}

// CancelSession 学生或导师都可取消未完成的预约
func (s *SessionService) CancelSession(userID, sessionID uint) (*model.TutoringSession, error) {
	session, err := s.SessionRepo.FindByID(sessionID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.StudentID != userID && session.TutorID != userID {
		return nil, util.ErrPermissionDenied
	}
	if session.Status != model.SessionBooked {
		return nil, util.ErrSessionNotBooked
	}

	session.Status = model.SessionCancelled
	if err := s.SessionRepo.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) ListForStudent(studentID uint) ([]model.TutoringSession, error) {
	return s.SessionRepo.FindByStudent(studentID)
}

func (s *SessionService) ListForTutor(tutorID uint) ([]model.TutoringSession, error) {
	return s.SessionRepo.FindByTutor(tutorID)
}
