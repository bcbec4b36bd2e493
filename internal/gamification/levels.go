package gamification

import "math"

// LevelTier 等级表中的一行
type LevelTier struct {
	Level       int    `json:"level"`
	Title       string `json:"title"`
	XPThreshold int    `json:"xpThreshold"`
}

// LevelTable 固定等级表 首行阈值必须为 0，保证任意非负经验值都能落在某一级
var LevelTable = []LevelTier{
	{1, "Beginner", 0},
	{2, "Learner", 100},
	{3, "Explorer", 300},
	{4, "Achiever", 600},
	{5, "Scholar", 1000},
	{6, "Strategist", 1800},
	{7, "Mentor", 3000},
	{8, "Expert", 5000},
	{9, "Master", 7500},
	{10, "Grandmaster", 10000},
}

// TierFor 返回阈值不超过 xp 的最高一级
func TierFor(xp int) LevelTier {
	tier := LevelTable[0]
	for _, t := range LevelTable {
		if t.XPThreshold > xp {
			break
		}
		tier = t
	}
	return tier
}

func LevelFor(xp int) int {
	return TierFor(xp).Level
}

// LevelProgress 当前等级内的进度
type LevelProgress struct {
	Level            int    `json:"level"`
	Title            string `json:"title"`
	CurrentThreshold int    `json:"currentThreshold"`
	NextThreshold    int    `json:"nextThreshold"`
	PercentToNext    int    `json:"percentToNext"`
}

// ProgressWithinLevel 计算 xp 在当前等级内的进度百分比
// 已到最高级时直接返回 100，避免除零
func ProgressWithinLevel(xp int) LevelProgress {
	tier := TierFor(xp)
	if tier.Level == LevelTable[len(LevelTable)-1].Level {
		return LevelProgress{
			Level:            tier.Level,
			Title:            tier.Title,
			CurrentThreshold: tier.XPThreshold,
			NextThreshold:    tier.XPThreshold,
			PercentToNext:    100,
		}
	}

	next := LevelTable[tier.Level] // 表按 Level 升序排列，Level 即下一行下标
	percent := int(math.Round(100 * float64(xp-tier.XPThreshold) / float64(next.XPThreshold-tier.XPThreshold)))

	return LevelProgress{
		Level:            tier.Level,
		Title:            tier.Title,
		CurrentThreshold: tier.XPThreshold,
		NextThreshold:    next.XPThreshold,
		PercentToNext:    percent,
	}
}
