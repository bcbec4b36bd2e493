package model

// BadgeID 徽章标识，一旦进入 Badges 就不会被移除
type BadgeID string

const (
	BadgeFirstSteps       BadgeID = "first_steps"
	BadgeQuizWhiz         BadgeID = "quiz_whiz"
	BadgeGoalGetter       BadgeID = "goal_getter"
	BadgeStreakStarter    BadgeID = "streak_starter"
	BadgeWeekWarrior      BadgeID = "week_warrior"
	BadgeMonthlyMaster    BadgeID = "monthly_master"
	BadgeSessionPro       BadgeID = "session_pro"
	BadgeKnowledgeSeeker  BadgeID = "knowledge_seeker"
	BadgeDedicatedLearner BadgeID = "dedicated_learner"
	BadgeTopScholar       BadgeID = "top_scholar"
	// perfect_score 不走条件表，由测验提交方显式授予
	BadgePerfectScore BadgeID = "perfect_score"
)

type BadgeList []BadgeID

// Contains 判断是否已拥有该徽章
func (l BadgeList) Contains(id BadgeID) bool {
	for _, b := range l {
		if b == id {
			return true
		}
	}
	return false
}

// ProgressRecord 学习者的游戏化账本 每个学习者一条，首次活动时惰性创建
// Level 永远等于 gamification.LevelFor(XP)，不单独维护
// swagger:model ProgressRecord
type ProgressRecord struct {
	BaseModel
	UserID            uint      `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	XP                int       `gorm:"default:0" json:"xp"`
	Level             int       `gorm:"default:1" json:"level"`
	Streak            int       `gorm:"default:0" json:"streak"`
	LongestStreak     int       `gorm:"default:0" json:"longestStreak"`
	LastActiveDate    string    `gorm:"size:10" json:"lastActiveDate"` // "2006-01-02"，未签到过为空
	Badges            BadgeList `gorm:"serializer:json" json:"badges"`
	SessionsCompleted int       `gorm:"default:0" json:"sessionsCompleted"`
	QuizzesCompleted  int       `gorm:"default:0" json:"quizzesCompleted"`
	GoalsCompleted    int       `gorm:"default:0" json:"goalsCompleted"`
	TotalStudyHours   int       `gorm:"default:0" json:"totalStudyHours"`
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}
