package controller

import (
	"errors"
	"strconv"

	"tutorhub_backend/internal/service"
	"tutorhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TutorController struct {
	TutorService *service.TutorService
}

func NewTutorController(tutorService *service.TutorService) *TutorController {
	return &TutorController{TutorService: tutorService}
}

// @Summary 搜索导师
// @Description 按学科搜索已审核的导师 按时薪升序
// @Tags 导师
// @Produce json
// @Param subject query string false "学科"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse{list=[]model.TutorProfile}}
// @Router /api/tutors [get]
func (c *TutorController) Search(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}

	profiles, total, err := c.TutorService.Search(ctx.Query("subject"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  profiles,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 导师主页
// @Tags 导师
// @Produce json
// @Param userId path int true "导师用户ID"
// @Success 200 {object} util.Response{data=model.TutorProfile}
// @Router /api/tutors/{userId} [get]
func (c *TutorController) GetProfile(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "invalid user ID")
		return
	}

	profile, err := c.TutorService.GetProfile(uint(userID))
	if errors.Is(err, util.ErrTutorNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary 维护我的导师资料
// @Description 新建或更新资料 更新后需重新审核
// @Tags 导师
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UpsertTutorProfileRequest true "资料"
// @Success 200 {object} util.Response{data=model.TutorProfile}
// @Router /api/tutors/me [put]
func (c *TutorController) UpsertProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpsertTutorProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.TutorService.UpsertProfile(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary 上传介绍视频
// @Description 上传导师介绍视频 自动读取时长
// @Tags 导师
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "视频文件"
// @Success 200 {object} util.Response{data=model.TutorProfile}
// @Router /api/tutors/me/intro-video [post]
func (c *TutorController) UploadIntroVideo(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "文件不能为空")
		return
	}

	profile, err := c.TutorService.UploadIntroVideo(ctx.Request.Context(), user.UserID, file)
	if errors.Is(err, util.ErrTutorNotFound) {
		util.NotFound(ctx)
		return
	}
	if errors.Is(err, util.ErrUnsupportedFile) {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

type VerifyTutorRequest struct {
	Verified bool `json:"verified"`
}

// @Summary 审核导师
// @Description 管理员审核导师资料
// @Tags 导师
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "导师用户ID"
// @Param request body VerifyTutorRequest true "审核结果"
// @Success 200 {object} util.Response
// @Router /api/admin/tutors/{userId}/verify [put]
func (c *TutorController) Verify(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "invalid user ID")
		return
	}

	var req VerifyTutorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TutorService.SetVerified(uint(userID), req.Verified); err != nil {
		if errors.Is(err, util.ErrTutorNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
