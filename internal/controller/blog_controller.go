package controller

import (
	"errors"
	"strconv"

	"tutorhub_backend/internal/service"
	"tutorhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	BlogService *service.BlogService
}

func NewBlogController(blogService *service.BlogService) *BlogController {
	return &BlogController{BlogService: blogService}
}

// @Summary 已发布文章列表
// @Tags 博客
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse{list=[]model.BlogPost}}
// @Router /api/blog [get]
func (c *BlogController) ListPublished(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}

	posts, total, err := c.BlogService.ListPublished(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  posts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 文章详情
// @Tags 博客
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} util.Response{data=model.BlogPost}
// @Router /api/blog/{slug} [get]
func (c *BlogController) GetBySlug(ctx *gin.Context) {
	post, err := c.BlogService.GetPublishedBySlug(ctx.Param("slug"))
	if errors.Is(err, util.ErrPostNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, post)
}

// @Summary 全部文章（含草稿）
// @Tags 博客
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse{list=[]model.BlogPost}}
// @Router /api/admin/blog [get]
func (c *BlogController) ListAll(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}

	posts, total, err := c.BlogService.ListAll(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  posts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 发布文章
// @Description 新建文章 slug 冲突返回 409 可设置 publishAt 定时发布
// @Tags 博客
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreatePostRequest true "文章内容"
// @Success 201 {object} util.Response{data=model.BlogPost}
// @Failure 409 {object} util.Response "slug 冲突"
// @Router /api/admin/blog [post]
func (c *BlogController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.BlogService.CreatePost(user.UserID, req)
	if errors.Is(err, util.ErrSlugTaken) {
		util.Conflict(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, post)
}

// @Summary 更新文章
// @Tags 博客
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "文章ID"
// @Param request body service.UpdatePostRequest true "更新内容"
// @Success 200 {object} util.Response{data=model.BlogPost}
// @Router /api/admin/blog/{id} [put]
func (c *BlogController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid post ID")
		return
	}

	var req service.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.BlogService.UpdatePost(uint(id), req)
	if errors.Is(err, util.ErrPostNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, post)
}

// @Summary 删除文章
// @Tags 博客
// @Produce json
// @Security BearerAuth
// @Param id path int true "文章ID"
// @Success 200 {object} util.Response
// @Router /api/admin/blog/{id} [delete]
func (c *BlogController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid post ID")
		return
	}

	if err := c.BlogService.DeletePost(uint(id)); err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
