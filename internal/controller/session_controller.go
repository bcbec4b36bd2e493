package controller

import (
	"errors"
	"strconv"

	"tutorhub_backend/internal/service"
	"tutorhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

func sessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound), errors.Is(err, util.ErrTutorNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrTutorUnavailable):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrSessionNotBooked):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary 预约辅导
// @Description 学生预约某导师的辅导时段 时间冲突返回 409
// @Tags 辅导预约
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.BookSessionRequest true "预约信息"
// @Success 201 {object} util.Response{data=model.TutoringSession}
// @Failure 409 {object} util.Response "时段冲突"
// @Router /api/sessions [post]
func (c *SessionController) Book(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.BookSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.BookSession(user.UserID, req)
	if err != nil {
		sessionError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// @Summary 我的预约
// @Description 学生视角的预约列表
// @Tags 辅导预约
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.TutoringSession}
// @Router /api/sessions [get]
func (c *SessionController) ListMine(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.SessionService.ListForStudent(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

// @Summary 导师的预约
// @Description 导师视角的预约列表
// @Tags 辅导预约
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.TutoringSession}
// @Router /api/sessions/teaching [get]
func (c *SessionController) ListTeaching(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.SessionService.ListForTutor(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

// @Summary 完成辅导
// @Description 导师确认辅导完成 学生获得经验值和学时
// @Tags 辅导预约
// @Produce json
// @Security BearerAuth
// @Param id path int true "预约ID"
// @Success 200 {object} util.Response{data=service.SessionOutcome}
// @Router /api/sessions/{id}/complete [post]
func (c *SessionController) Complete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid session ID")
		return
	}

	outcome, err := c.SessionService.CompleteSession(user.UserID, uint(id))
	if err != nil {
		sessionError(ctx, err)
		return
	}

	util.Success(ctx, outcome)
}

// @Summary 取消预约
// @Tags 辅导预约
// @Produce json
// @Security BearerAuth
// @Param id path int true "预约ID"
// @Success 200 {object} util.Response{data=model.TutoringSession}
// @Router /api/sessions/{id}/cancel [post]
func (c *SessionController) Cancel(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid session ID")
		return
	}

	session, err := c.SessionService.CancelSession(user.UserID, uint(id))
	if err != nil {
		sessionError(ctx, err)
		return
	}

	util.Success(ctx, session)
}
