package gamification

import "tutorhub_backend/internal/model"

// BadgeInfo 徽章定义及解锁条件
type BadgeInfo struct {
	ID        model.BadgeID
	Name      string
	Icon      string
	Condition func(*model.ProgressRecord) bool
}

// BadgeTable 条件徽章表 每个条件独立判定，互不排斥，解锁后不会回收
// perfect_score 不在表内：它由测验提交方在 accuracy == 100 时显式授予
var BadgeTable = []BadgeInfo{
	{model.BadgeFirstSteps, "First Steps", "👣", func(r *model.ProgressRecord) bool { return r.SessionsCompleted >= 1 }},
	{model.BadgeQuizWhiz, "Quiz Whiz", "🧠", func(r *model.ProgressRecord) bool { return r.QuizzesCompleted >= 5 }},
	{model.BadgeGoalGetter, "Goal Getter", "🎯", func(r *model.ProgressRecord) bool { return r.GoalsCompleted >= 1 }},
	{model.BadgeStreakStarter, "Streak Starter", "🔥", func(r *model.ProgressRecord) bool { return r.LongestStreak >= 3 }},
	{model.BadgeWeekWarrior, "Week Warrior", "📅", func(r *model.ProgressRecord) bool { return r.LongestStreak >= 7 }},
	{model.BadgeMonthlyMaster, "Monthly Master", "🗓️", func(r *model.ProgressRecord) bool { return r.LongestStreak >= 30 }},
	{model.BadgeSessionPro, "Session Pro", "🎓", func(r *model.ProgressRecord) bool { return r.SessionsCompleted >= 10 }},
	{model.BadgeKnowledgeSeeker, "Knowledge Seeker", "📚", func(r *model.ProgressRecord) bool { return r.QuizzesCompleted >= 25 }},
	{model.BadgeDedicatedLearner, "Dedicated Learner", "⭐", func(r *model.ProgressRecord) bool { return r.Level >= 5 }},
	{model.BadgeTopScholar, "Top Scholar", "🏆", func(r *model.ProgressRecord) bool { return r.Level >= 10 }},
}

// evaluateBadges 对照更新后的记录检查所有条件徽章，
// 新满足的追加进 Badges 并返回；已拥有的跳过（幂等）
func evaluateBadges(rec *model.ProgressRecord) []model.BadgeID {
	var earned []model.BadgeID
	for _, b := range BadgeTable {
		if rec.Badges.Contains(b.ID) {
			continue
		}
		if b.Condition(rec) {
			rec.Badges = append(rec.Badges, b.ID)
			earned = append(earned, b.ID)
		}
	}
	return earned
}

// AwardBadge 显式授予一枚徽章（perfect_score 走这里）
// 已拥有时是 no-op，返回 false
func AwardBadge(rec *model.ProgressRecord, id model.BadgeID) bool {
	if rec.Badges.Contains(id) {
		return false
	}
	rec.Badges = append(rec.Badges, id)
	return true
}

// BadgeName 返回徽章的展示名，未知 ID 原样返回
func BadgeName(id model.BadgeID) string {
	for _, b := range BadgeTable {
		if b.ID == id {
			return b.Name
		}
	}
	if id == model.BadgePerfectScore {
		return "Perfect Score"
	}
	return string(id)
}
