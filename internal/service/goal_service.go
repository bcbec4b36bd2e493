package service

import (
	"fmt"
	"time"

	"tutorhub_backend/internal/gamification"
	"tutorhub_backend/internal/model"
	"tutorhub_backend/internal/repository"
	"tutorhub_backend/internal/util"

	"gorm.io/gorm"
)

// GoalService 学习目标管理 目标达成时给账本记 goal_achieved
type GoalService struct {
	GoalRepo        *repository.GoalRepository
	ProgressService *ProgressService
}

func NewGoalService(goalRepo *repository.GoalRepository, progressService *ProgressService) *GoalService {
	return &GoalService{
		GoalRepo:        goalRepo,
		ProgressService: progressService,
	}
}

type CreateGoalRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Target      int       `json:"target" binding:"required,min=1"`
	TargetDate  time.Time `json:"targetDate" binding:"required"`
}

func (s *GoalService) CreateGoal(userID uint, req CreateGoalRequest) (*model.Goal, error) {
	goal := &model.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.GoalPending,
		Target:      req.Target,
		TargetDate:  req.TargetDate,
	}
	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) ListGoals(userID uint) ([]model.Goal, error) {
	return s.GoalRepo.FindByUserID(userID)
}

// GoalOutcome 目标进度更新的反馈 达成时带上入账结果
type GoalOutcome struct {
	Goal     *model.Goal               `json:"goal"`
	Achieved bool                      `json:"achieved"`
	Award    *gamification.AwardResult `json:"award,omitempty"`
}

// UpdateProgress 推进目标 进度到达 target 时标记完成并入账一次
// 已完成的目标不再接受更新
func (s *GoalService) UpdateProgress(userID, goalID uint, current int) (*GoalOutcome, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	if goal.Status == model.GoalCompleted {
		return &GoalOutcome{Goal: goal}, nil
	}

	goal.Current = current
	achieved := current >= goal.Target
	if achieved {
		goal.Current = goal.Target
		goal.Status = model.GoalCompleted
	} else if goal.Status == model.GoalPending && current > 0 {
		goal.Status = model.GoalInProgress
	}

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}

	outcome := &GoalOutcome{Goal: goal, Achieved: achieved}
	if achieved {
		award, err := s.ProgressService.AwardXP(
			userID,
			model.TxGoalAchieved,
			gamification.GoalAchievedXP,
			fmt.Sprintf("Achieved goal: %s", goal.Title),
			gamification.CounterDeltas{Goals: 1},
		)
		if err != nil {
			return nil, err
		}
		outcome.Award = award
	}
	return outcome, nil
}

func (s *GoalService) DeleteGoal(userID, goalID uint) error {
	if _, err := s.GoalRepo.FindByIDAndUserID(goalID, userID); err == gorm.ErrRecordNotFound {
		return util.ErrGoalNotFound
	} else if err != nil {
		return err
	}
	return s.GoalRepo.Delete(goalID, userID)
}
