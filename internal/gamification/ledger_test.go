package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhub_backend/internal/model"
)

func day(s string) time.Time {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestApplyXPRejectsNonPositive(t *testing.T) {
	rec := NewRecord(1)
	for _, amount := range []int{0, -1, -50} {
		_, err := ApplyXP(rec, amount, CounterDeltas{})
		assert.ErrorIs(t, err, ErrInvalidXPAmount)
	}
	assert.Equal(t, 0, rec.XP)
}

func TestApplyXPFreshLearnerFirstSession(t *testing.T) {
	// 新学习者完成第一次辅导：50 XP 不够升 2 级，解锁 first_steps
	rec := NewRecord(42)
	res, err := ApplyXP(rec, 50, CounterDeltas{Sessions: 1})
	require.NoError(t, err)

	assert.Equal(t, 50, res.NewXP)
	assert.Equal(t, 1, res.NewLevel)
	assert.False(t, res.LeveledUp)
	assert.Equal(t, []model.BadgeID{model.BadgeFirstSteps}, res.BadgesEarned)
	assert.Equal(t, 1, rec.SessionsCompleted)
}

func TestApplyXPLevelUp(t *testing.T) {
	rec := NewRecord(1)
	rec.XP = 95
	rec.Level = LevelFor(rec.XP)

	res, err := ApplyXP(rec, 10, CounterDeltas{})
	require.NoError(t, err)

	assert.Equal(t, 105, res.NewXP)
	assert.Equal(t, 2, res.NewLevel)
	assert.True(t, res.LeveledUp)
}

func TestApplyXPCounterDeltas(t *testing.T) {
	rec := NewRecord(1)
	_, err := ApplyXP(rec, 30, CounterDeltas{Quizzes: 1, StudyHours: 2})
	require.NoError(t, err)
	_, err = ApplyXP(rec, 30, CounterDeltas{Goals: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, rec.QuizzesCompleted)
	assert.Equal(t, 1, rec.GoalsCompleted)
	assert.Equal(t, 2, rec.TotalStudyHours)
	assert.Equal(t, 0, rec.SessionsCompleted)
}

func TestBadgeEvaluationIsIdempotent(t *testing.T) {
	rec := NewRecord(1)
	_, err := ApplyXP(rec, 50, CounterDeltas{Sessions: 1})
	require.NoError(t, err)
	require.True(t, rec.Badges.Contains(model.BadgeFirstSteps))

	// 再完成一次辅导：first_steps 条件仍满足，但不会重复入账
	res, err := ApplyXP(rec, 50, CounterDeltas{Sessions: 1})
	require.NoError(t, err)
	assert.Empty(t, res.BadgesEarned)
	assert.Len(t, rec.Badges, 1)
}

func TestBadgesNeverRemoved(t *testing.T) {
	rec := NewRecord(1)
	rec.SessionsCompleted = 9
	_, err := ApplyXP(rec, 10, CounterDeltas{Sessions: 1})
	require.NoError(t, err)
	require.True(t, rec.Badges.Contains(model.BadgeSessionPro))

	before := len(rec.Badges)
	for i := 0; i < 20; i++ {
		_, err := ApplyXP(rec, 10, CounterDeltas{})
		require.NoError(t, err)
		ApplyStreak(rec, day("2026-01-01").AddDate(0, 0, i))
	}
	for _, b := range rec.Badges[:before] {
		assert.True(t, rec.Badges.Contains(b))
	}
}

func TestLevelBadges(t *testing.T) {
	rec := NewRecord(1)
	_, err := ApplyXP(rec, 1000, CounterDeltas{})
	require.NoError(t, err)
	assert.True(t, rec.Badges.Contains(model.BadgeDedicatedLearner))
	assert.False(t, rec.Badges.Contains(model.BadgeTopScholar))

	_, err = ApplyXP(rec, 9000, CounterDeltas{})
	require.NoError(t, err)
	assert.True(t, rec.Badges.Contains(model.BadgeTopScholar))
}

func TestAwardBadgeExplicit(t *testing.T) {
	rec := NewRecord(1)
	assert.True(t, AwardBadge(rec, model.BadgePerfectScore))
	assert.False(t, AwardBadge(rec, model.BadgePerfectScore))
	assert.Len(t, rec.Badges, 1)
}

func TestApplyStreakFirstCheckin(t *testing.T) {
	rec := NewRecord(1)
	res := ApplyStreak(rec, day("2026-03-01"))

	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, 1, res.LongestStreak)
	assert.Equal(t, DailyLoginXP, res.XPAwarded)
	require.Len(t, res.Bonuses, 1)
	assert.Equal(t, model.TxLoginBonus, res.Bonuses[0].Kind)
	assert.Equal(t, "2026-03-01", rec.LastActiveDate)
}

func TestApplyStreakSameDayIsNoop(t *testing.T) {
	rec := NewRecord(1)
	ApplyStreak(rec, day("2026-03-01"))
	xpAfterFirst := rec.XP

	res := ApplyStreak(rec, day("2026-03-01"))
	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, 0, res.XPAwarded)
	assert.Empty(t, res.Bonuses)
	assert.Equal(t, xpAfterFirst, rec.XP)
	assert.Equal(t, 1, rec.LongestStreak)
}

func TestApplyStreakThreeConsecutiveDays(t *testing.T) {
	// 连续三天：streak=3，解锁 streak_starter，总共 30 XP（未到 7/30 里程碑）
	rec := NewRecord(1)
	total := 0
	for _, d := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		res := ApplyStreak(rec, day(d))
		total += res.XPAwarded
	}

	assert.Equal(t, 3, rec.Streak)
	assert.Equal(t, 3, rec.LongestStreak)
	assert.Equal(t, 30, total)
	assert.True(t, rec.Badges.Contains(model.BadgeStreakStarter))
}

func TestApplyStreakGapResets(t *testing.T) {
	rec := NewRecord(1)
	ApplyStreak(rec, day("2026-03-01"))
	ApplyStreak(rec, day("2026-03-02"))
	require.Equal(t, 2, rec.Streak)

	res := ApplyStreak(rec, day("2026-03-05"))
	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, 2, rec.LongestStreak) // 高水位保留
}

func TestApplyStreakWeekMilestone(t *testing.T) {
	rec := NewRecord(1)
	start := day("2026-03-01")
	var last *StreakResult
	for i := 0; i < 7; i++ {
		last = ApplyStreak(rec, start.AddDate(0, 0, i))
	}

	require.Equal(t, 7, rec.Streak)
	// 第 7 天：10 登录奖励 + 50 里程碑，各一条流水
	assert.Equal(t, DailyLoginXP+WeekMilestoneXP, last.XPAwarded)
	require.Len(t, last.Bonuses, 2)
	assert.Equal(t, model.TxLoginBonus, last.Bonuses[0].Kind)
	assert.Equal(t, model.TxStreakBonus, last.Bonuses[1].Kind)
	assert.True(t, rec.Badges.Contains(model.BadgeWeekWarrior))
}

func TestApplyStreakMonthMilestone(t *testing.T) {
	rec := NewRecord(1)
	start := day("2026-03-01")
	var last *StreakResult
	for i := 0; i < 30; i++ {
		last = ApplyStreak(rec, start.AddDate(0, 0, i))
	}

	require.Equal(t, 30, rec.Streak)
	assert.Equal(t, DailyLoginXP+MonthMilestoneXP, last.XPAwarded)
	assert.True(t, rec.Badges.Contains(model.BadgeMonthlyMaster))

	// 第 31 天只有日常奖励，里程碑不重发
	res := ApplyStreak(rec, start.AddDate(0, 0, 30))
	assert.Equal(t, DailyLoginXP, res.XPAwarded)
}

func TestApplyStreakRecomputesLevel(t *testing.T) {
	rec := NewRecord(1)
	rec.XP = 95
	rec.Level = LevelFor(rec.XP)

	res := ApplyStreak(rec, day("2026-03-01"))
	assert.Equal(t, 105, rec.XP)
	assert.Equal(t, 2, res.NewLevel)
	assert.Equal(t, 2, rec.Level)
}

func TestQuizCompletionXP(t *testing.T) {
	assert.Equal(t, 20, QuizCompletionXP(0))
	assert.Equal(t, 55, QuizCompletionXP(7))
}
