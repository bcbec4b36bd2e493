package service

import (
	"fmt"
	"time"

	"tutorhub_backend/internal/gamification"
	"tutorhub_backend/internal/model"
	"tutorhub_backend/internal/quiz"
	"tutorhub_backend/internal/repository"
	"tutorhub_backend/internal/util"
	"tutorhub_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// QuizService 测验流程编排：生成 -> 闪卡学习 -> 答题 -> 提交判分 -> 经验值入账。
// 状态机和判分在 quiz 包里，这里只做快照的存取和入账的衔接。
type QuizService struct {
	QuizRepo        *repository.QuizRepository
	ProgressService *ProgressService
	AIService       *AIService
}

func NewQuizService(quizRepo *repository.QuizRepository, progressService *ProgressService, aiService *AIService) *QuizService {
	return &QuizService{
		QuizRepo:        quizRepo,
		ProgressService: progressService,
		AIService:       aiService,
	}
}

type GenerateQuizRequest struct {
	Subject    string `json:"subject" binding:"required"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// GenerateQuiz 调 AI 出题并落库
func (s *QuizService) GenerateQuiz(userID uint, req GenerateQuizRequest) (*model.Quiz, error) {
	if req.Count <= 0 || req.Count > 20 {
		req.Count = 10
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	generated, err := s.AIService.GenerateQuestions(req.Subject, req.Difficulty, req.Count)
	if err != nil {
		return nil, err
	}

	q := &model.Quiz{
		Title:      fmt.Sprintf("%s quiz (%s)", req.Subject, req.Difficulty),
		Subject:    req.Subject,
		Difficulty: req.Difficulty,
		CreatedBy:  userID,
	}
	for i, g := range generated {
		q.Questions = append(q.Questions, model.QuizQuestion{
			Prompt:   g.Prompt,
			Options:  g.Options,
			Answer:   g.Answer,
			Position: i,
		})
	}

	if err := s.QuizRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuizService) ListQuizzes(subject string, page, limit int) ([]model.Quiz, int64, error) {
	return s.QuizRepo.List(subject, page, limit)
}

func (s *QuizService) GetQuiz(id uint) (*model.Quiz, error) {
	q, err := s.QuizRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrQuizNotFound
	}
	return q, err
}

// StartAttempt 开始一次答题 初始状态 not_started
func (s *QuizService) StartAttempt(userID, quizID uint) (*model.QuizAttempt, error) {
	q, err := s.GetQuiz(quizID)
	if err != nil {
		return nil, err
	}

	attempt := &model.QuizAttempt{
		UserID:      userID,
		QuizID:      quizID,
		State:       model.AttemptNotStarted,
		CardsViewed: make(model.BoolList, len(q.Questions)),
		Answers:     make(model.StringList, len(q.Questions)),
		StartedAt:   time.Now(),
	}

	if err := s.QuizRepo.CreateAttempt(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// hydrate 把持久化快照恢复成状态机
func (s *QuizService) hydrate(attempt *model.QuizAttempt) (*quiz.Attempt, error) {
	q, err := s.GetQuiz(attempt.QuizID)
	if err != nil {
		return nil, err
	}

	questions := make([]quiz.Question, len(q.Questions))
	for i, qq := range q.Questions {
		questions[i] = quiz.Question{
			ID:       qq.ID,
			Prompt:   qq.Prompt,
			Options:  qq.Options,
			Expected: qq.Answer,
		}
	}

	return quiz.Rehydrate(questions, quiz.State(attempt.State), attempt.CardsViewed, attempt.Answers, attempt.StartedAt), nil
}

func (s *QuizService) snapshot(attempt *model.QuizAttempt, a *quiz.Attempt) error {
	attempt.State = model.AttemptState(a.State)
	attempt.CardsViewed = model.BoolList(a.Viewed)
	attempt.Answers = model.StringList(a.Answers)
	return s.QuizRepo.SaveAttempt(attempt)
}

func (s *QuizService) findAttempt(attemptID, userID uint) (*model.QuizAttempt, error) {
	attempt, err := s.QuizRepo.FindAttempt(attemptID, userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrAttemptNotFound
	}
	return attempt, err
}

// ViewCard 标记一张闪卡已看
func (s *QuizService) ViewCard(userID, attemptID uint, index int) (*model.QuizAttempt, error) {
	attempt, err := s.findAttempt(attemptID, userID)
	if err != nil {
		return nil, err
	}

	a, err := s.hydrate(attempt)
	if err != nil {
		return nil, err
	}
	if err := a.ViewCard(index); err != nil {
		return nil, err
	}

	return attempt, s.snapshot(attempt, a)
}

// BeginAnswering 从学习阶段进入答题阶段
func (s *QuizService) BeginAnswering(userID, attemptID uint) (*model.QuizAttempt, error) {
	attempt, err := s.findAttempt(attemptID, userID)
	if err != nil {
		return nil, err
	}

	a, err := s.hydrate(attempt)
	if err != nil {
		return nil, err
	}
	if err := a.BeginAnswering(); err != nil {
		return nil, err
	}

	return attempt, s.snapshot(attempt, a)
}

// SetAnswer 记录或覆盖某题答案
func (s *QuizService) SetAnswer(userID, attemptID uint, index int, answer string) (*model.QuizAttempt, error) {
	attempt, err := s.findAttempt(attemptID, userID)
	if err != nil {
		return nil, err
	}

	a, err := s.hydrate(attempt)
	if err != nil {
		return nil, err
	}
	if err := a.SetAnswer(index, answer); err != nil {
		return nil, err
	}

	return attempt, s.snapshot(attempt, a)
}

// SubmitOutcome 提交后的完整反馈
type SubmitOutcome struct {
	Result       *model.QuizResult         `json:"result"`
	Award        *gamification.AwardResult `json:"award"`
	PerfectScore bool                      `json:"perfectScore"`
}

// SubmitAttempt 提交判分并入账。
// 经验值和 perfect_score 徽章都是提交方的责任，判分本身不碰账本。
func (s *QuizService) SubmitAttempt(userID, attemptID uint) (*SubmitOutcome, error) {
	attempt, err := s.findAttempt(attemptID, userID)
	if err != nil {
		return nil, err
	}

	a, err := s.hydrate(attempt)
	if err != nil {
		return nil, err
	}

	res, err := a.Submit(time.Now())
	if err != nil {
		return nil, err
	}

	now := a.SubmittedAt
	attempt.SubmittedAt = &now
	if err := s.snapshot(attempt, a); err != nil {
		return nil, err
	}

	breakdown := make(model.StringList, len(res.Breakdown))
	for i, b := range res.Breakdown {
		breakdown[i] = string(b.Outcome)
	}

	stored := &model.QuizResult{
		AttemptID:        attempt.ID,
		UserID:           userID,
		QuizID:           attempt.QuizID,
		TotalQuestions:   res.TotalQuestions,
		CorrectAnswers:   res.CorrectAnswers,
		WrongAnswers:     res.WrongAnswers,
		Skipped:          res.Skipped,
		Accuracy:         res.Accuracy,
		TimeTakenSeconds: res.TimeTakenSeconds,
		Breakdown:        breakdown,
	}
	if err := s.QuizRepo.SaveResult(stored); err != nil {
		return nil, err
	}

	monitoring.QuizSubmissionCounter.Inc()

	award, err := s.ProgressService.AwardXP(
		userID,
		model.TxQuizCompleted,
		gamification.QuizCompletionXP(res.CorrectAnswers),
		fmt.Sprintf("Completed quiz #%d (%d%% accuracy)", attempt.QuizID, res.Accuracy),
		gamification.CounterDeltas{Quizzes: 1},
	)
	if err != nil {
		return nil, err
	}

	perfect := res.Accuracy == 100
	if perfect {
		if _, err := s.ProgressService.UnlockBadge(userID, model.BadgePerfectScore); err != nil {
			return nil, err
		}
		bonus, err := s.ProgressService.AwardXP(
			userID,
			model.TxPerfectQuiz,
			gamification.PerfectQuizBonusXP,
			fmt.Sprintf("Perfect score on quiz #%d", attempt.QuizID),
			gamification.CounterDeltas{},
		)
		if err != nil {
			return nil, err
		}
		award = bonus
	}

	return &SubmitOutcome{Result: stored, Award: award, PerfectScore: perfect}, nil
}

func (s *QuizService) GetAttemptResult(userID, attemptID uint) (*model.QuizResult, error) {
	if _, err := s.findAttempt(attemptID, userID); err != nil {
		return nil, err
	}
	result, err := s.QuizRepo.FindResultByAttempt(attemptID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrAttemptNotFound
	}
	return result, err
}

func (s *QuizService) GetUserResults(userID uint, limit int) ([]model.QuizResult, error) {
	return s.QuizRepo.FindResultsByUser(userID, limit)
}
