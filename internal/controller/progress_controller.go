package controller

import (
	"strconv"
	"time"

	"tutorhub_backend/internal/service"
	"tutorhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary 学习进度总览
// @Description 获取当前用户的经验值、等级、连续天数、徽章和最近流水
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ProgressOverview}
// @Router /api/progress [get]
func (c *ProgressController) GetOverview(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.ProgressService.GetOverview(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// @Summary 每日签到
// @Description 更新连续学习天数并发放每日与里程碑奖励 同一天重复签到不重复发奖
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=gamification.StreakResult}
// @Router /api/progress/checkin [post]
func (c *ProgressController) Checkin(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.ProgressService.Checkin(user.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 徽章列表
// @Description 获取所有徽章及当前用户的解锁状态
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.BadgeView}
// @Router /api/progress/badges [get]
func (c *ProgressController) GetBadges(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.ProgressService.GetBadges(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}

// @Summary 排行榜
// @Description 按经验值排序的学习者排行榜
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Param limit query int false "返回数量" default(10)
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/progress/leaderboard [get]
func (c *ProgressController) GetLeaderboard(ctx *gin.Context) {
	limit := 10
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	entries, err := c.ProgressService.GetLeaderboard(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
