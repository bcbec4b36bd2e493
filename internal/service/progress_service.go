package service

import (
	"context"
	"encoding/json"
	"time"

	"tutorhub_backend/internal/gamification"
	"tutorhub_backend/internal/model"
	"tutorhub_backend/internal/repository"
	"tutorhub_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	leaderboardCacheKey = "tutorhub:leaderboard"
	leaderboardCacheTTL = 60 * time.Second
)

// ProgressService 游戏化账本的编排层：
// 取行锁 -> 调 gamification 纯函数 -> 持久化 -> 写流水。
// 规则本身全部在 gamification 包里，这里只负责存取。
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	TxRepo       *repository.XPTransactionRepository
	UserRepo     *repository.UserRepository
	db           *gorm.DB
	rdb          *redis.Client
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	txRepo *repository.XPTransactionRepository,
	userRepo *repository.UserRepository,
	db *gorm.DB,
	rdb *redis.Client,
) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		TxRepo:       txRepo,
		UserRepo:     userRepo,
		db:           db,
		rdb:          rdb,
	}
}

// AwardXP 给学习者入账一笔经验值并写一条流水
// 记录不存在时惰性创建；同一学习者的并发入账由行锁串行化
func (s *ProgressService) AwardXP(userID uint, kind model.TransactionKind, amount int, description string, deltas gamification.CounterDeltas) (*gamification.AwardResult, error) {
	var result *gamification.AwardResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		rec, err := s.ProgressRepo.LockForUpdate(tx, userID)
		if err != nil {
			return err
		}

		result, err = gamification.ApplyXP(rec, amount, deltas)
		if err != nil {
			return err
		}

		if err := s.ProgressRepo.Save(tx, rec); err != nil {
			return err
		}

		return s.TxRepo.Append(tx, &model.XPTransaction{
			UserID:      userID,
			Kind:        kind,
			XPAmount:    amount,
			Description: description,
		})
	})

	if err != nil {
		return nil, err
	}

	monitoring.XPAwardCounter.WithLabelValues(string(kind)).Inc()
	return result, nil
}

// Checkin 每日签到 同一天重复调用不会重复发奖
func (s *ProgressService) Checkin(userID uint, today time.Time) (*gamification.StreakResult, error) {
	var result *gamification.StreakResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		rec, err := s.ProgressRepo.LockForUpdate(tx, userID)
		if err != nil {
			return err
		}

		result = gamification.ApplyStreak(rec, today)
		if len(result.Bonuses) == 0 {
			// 今天已签过，没有任何变更要写
			return nil
		}

		if err := s.ProgressRepo.Save(tx, rec); err != nil {
			return err
		}

		for _, b := range result.Bonuses {
			err := s.TxRepo.Append(tx, &model.XPTransaction{
				UserID:      userID,
				Kind:        b.Kind,
				XPAmount:    b.Amount,
				Description: b.Description,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	for _, b := range result.Bonuses {
		monitoring.XPAwardCounter.WithLabelValues(string(b.Kind)).Inc()
	}
	return result, nil
}

// UnlockBadge 显式授予徽章（perfect_score 由测验提交方走这里）
func (s *ProgressService) UnlockBadge(userID uint, badge model.BadgeID) (bool, error) {
	var added bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		rec, err := s.ProgressRepo.LockForUpdate(tx, userID)
		if err != nil {
			return err
		}

		added = gamification.AwardBadge(rec, badge)
		if !added {
			return nil
		}
		return s.ProgressRepo.Save(tx, rec)
	})

	return added, err
}

// ProgressOverview 仪表盘展示的数据
type ProgressOverview struct {
	Record             *model.ProgressRecord      `json:"record"`
	LevelProgress      gamification.LevelProgress `json:"levelProgress"`
	RecentTransactions []model.XPTransaction      `json:"recentTransactions"`
}

func (s *ProgressService) GetOverview(userID uint) (*ProgressOverview, error) {
	rec, err := s.ProgressRepo.FindByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		rec = gamification.NewRecord(userID)
	} else if err != nil {
		return nil, err
	}

	txs, err := s.TxRepo.FindRecentByUser(userID, 20)
	if err != nil {
		return nil, err
	}

	return &ProgressOverview{
		Record:             rec,
		LevelProgress:      gamification.ProgressWithinLevel(rec.XP),
		RecentTransactions: txs,
	}, nil
}

// BadgeView 徽章详情（含是否解锁）
type BadgeView struct {
	ID       model.BadgeID `json:"id"`
	Name     string        `json:"name"`
	Icon     string        `json:"icon"`
	Unlocked bool          `json:"unlocked"`
}

func (s *ProgressService) GetBadges(userID uint) ([]BadgeView, error) {
	rec, err := s.ProgressRepo.FindByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		rec = gamification.NewRecord(userID)
	} else if err != nil {
		return nil, err
	}

	views := make([]BadgeView, 0, len(gamification.BadgeTable)+1)
	for _, b := range gamification.BadgeTable {
		views = append(views, BadgeView{
			ID:       b.ID,
			Name:     b.Name,
			Icon:     b.Icon,
			Unlocked: rec.Badges.Contains(b.ID),
		})
	}
	views = append(views, BadgeView{
		ID:       model.BadgePerfectScore,
		Name:     gamification.BadgeName(model.BadgePerfectScore),
		Icon:     "💯",
		Unlocked: rec.Badges.Contains(model.BadgePerfectScore),
	})
	return views, nil
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	User   string `json:"user"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
	Avatar string `json:"avatar,omitempty"`
}

// GetLeaderboard 按经验值排序的前 N 名 结果在 redis 里缓存一分钟
func (s *ProgressService) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit == 10 {
		if cached, err := s.rdb.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	recs, err := s.ProgressRepo.TopByXP(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(recs))
	for i, rec := range recs {
		name := ""
		avatar := ""
		if user, err := s.UserRepo.FindByID(rec.UserID); err == nil {
			name = user.Name
			avatar = user.Avatar
		}
		entries[i] = LeaderboardEntry{
			Rank:   i + 1,
			User:   name,
			XP:     rec.XP,
			Level:  rec.Level,
			Avatar: avatar,
		}
	}

	if limit == 10 {
		if data, err := json.Marshal(entries); err == nil {
			s.rdb.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL)
		}
	}

	return entries, nil
}
