// Package gamification 实现学习者进度账本的全部规则：
// 经验值累加、等级换算、连续签到和徽章解锁。
// 所有函数都是对传入 ProgressRecord 的纯计算，不做任何存储和网络调用，
// 持久化由调用方（service 层）负责。
package gamification

import (
	"errors"
	"fmt"
	"time"

	"tutorhub_backend/internal/model"
)

const DateFormat = "2006-01-02"

// 签到奖励
const (
	DailyLoginXP       = 10
	WeekMilestoneXP    = 50  // streak 首次到 7
	MonthMilestoneXP   = 200 // streak 首次到 30
	SessionCompletedXP = 50
	GoalAchievedXP     = 50
	PerfectQuizBonusXP = 25
)

var ErrInvalidXPAmount = errors.New("xp amount must be positive")

// CounterDeltas awardXP 时随经验值一起累加的计数器增量
type CounterDeltas struct {
	Sessions   int
	Quizzes    int
	Goals      int
	StudyHours int
}

// AwardResult 一次经验值入账的结果
type AwardResult struct {
	NewXP        int             `json:"newXp"`
	NewLevel     int             `json:"newLevel"`
	LeveledUp    bool            `json:"leveledUp"`
	BadgesEarned []model.BadgeID `json:"badgesEarned"`
}

// ApplyXP 把一笔经验值计入记录：累加 XP 和计数器，重算等级，
// 再对更新后的记录做徽章判定。amount 必须为正。
func ApplyXP(rec *model.ProgressRecord, amount int, deltas CounterDeltas) (*AwardResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidXPAmount
	}

	oldLevel := rec.Level

	rec.XP += amount
	rec.SessionsCompleted += deltas.Sessions
	rec.QuizzesCompleted += deltas.Quizzes
	rec.GoalsCompleted += deltas.Goals
	rec.TotalStudyHours += deltas.StudyHours
	rec.Level = LevelFor(rec.XP)

	earned := evaluateBadges(rec)

	return &AwardResult{
		NewXP:        rec.XP,
		NewLevel:     rec.Level,
		LeveledUp:    rec.Level > oldLevel,
		BadgesEarned: earned,
	}, nil
}

// StreakBonus 签到产生的一笔奖励，调用方为每笔各写一条流水
type StreakBonus struct {
	Kind        model.TransactionKind `json:"kind"`
	Amount      int                   `json:"amount"`
	Description string                `json:"description"`
}

// StreakResult 一次签到的结果
type StreakResult struct {
	Streak        int             `json:"streak"`
	LongestStreak int             `json:"longestStreak"`
	XPAwarded     int             `json:"xpAwarded"`
	Bonuses       []StreakBonus   `json:"bonuses"`
	NewLevel      int             `json:"newLevel"`
	BadgesEarned  []model.BadgeID `json:"badgesEarned"`
}

// ApplyStreak 按日历日推进连续签到。
// 同一天重复调用是 no-op（不重复发奖）；昨天签过则 streak+1，
// 断档或首次签到重置为 1。每次推进发固定登录奖励，
// streak 首次到 7/30 时在登录奖励之外追加里程碑奖励。
func ApplyStreak(rec *model.ProgressRecord, today time.Time) *StreakResult {
	day := today.Format(DateFormat)

	if rec.LastActiveDate == day {
		return &StreakResult{
			Streak:        rec.Streak,
			LongestStreak: rec.LongestStreak,
			XPAwarded:     0,
			NewLevel:      rec.Level,
		}
	}

	yesterday := today.AddDate(0, 0, -1).Format(DateFormat)
	if rec.LastActiveDate == yesterday {
		rec.Streak++
	} else {
		rec.Streak = 1
	}

	if rec.Streak > rec.LongestStreak {
		rec.LongestStreak = rec.Streak
	}
	rec.LastActiveDate = day

	bonuses := []StreakBonus{
		{model.TxLoginBonus, DailyLoginXP, fmt.Sprintf("Daily check-in (day %d)", rec.Streak)},
	}
	if rec.Streak == 7 {
		bonuses = append(bonuses, StreakBonus{model.TxStreakBonus, WeekMilestoneXP, "7-day streak milestone"})
	}
	if rec.Streak == 30 {
		bonuses = append(bonuses, StreakBonus{model.TxStreakBonus, MonthMilestoneXP, "30-day streak milestone"})
	}

	total := 0
	for _, b := range bonuses {
		total += b.Amount
	}

	rec.XP += total
	rec.Level = LevelFor(rec.XP)
	earned := evaluateBadges(rec)

	return &StreakResult{
		Streak:        rec.Streak,
		LongestStreak: rec.LongestStreak,
		XPAwarded:     total,
		Bonuses:       bonuses,
		NewLevel:      rec.Level,
		BadgesEarned:  earned,
	}
}

// QuizCompletionXP 完成测验的经验值：保底 20，每答对一题 +5
func QuizCompletionXP(correct int) int {
	return 20 + correct*5
}

// NewRecord 首次活动时惰性创建的空白记录
func NewRecord(userID uint) *model.ProgressRecord {
	return &model.ProgressRecord{
		UserID: userID,
		Level:  1,
		Badges: model.BadgeList{},
	}
}
