package controller

import (
	"errors"
	"strconv"

	"tutorhub_backend/internal/quiz"
	"tutorhub_backend/internal/service"
	"tutorhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// 测验流程错误到 HTTP 状态码的映射
func quizError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuizNotFound), errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(ctx)
	case errors.Is(err, quiz.ErrAlreadySubmitted):
		util.Conflict(ctx, "attempt already submitted")
	case errors.Is(err, quiz.ErrCardsRemaining):
		util.Conflict(ctx, "all cards must be viewed before answering")
	case errors.Is(err, quiz.ErrNotAnswering):
		util.Conflict(ctx, "attempt is not in answering phase")
	case errors.Is(err, quiz.ErrNoQuestions), errors.Is(err, quiz.ErrQuestionIndex):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary 生成测验
// @Description 按学科和难度 AI 生成一套选择题
// @Tags 测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.GenerateQuizRequest true "生成参数"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Router /api/quizzes/generate [post]
func (c *QuizController) Generate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuizService.GenerateQuiz(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, q)
}

// @Summary 测验列表
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param subject query string false "学科过滤"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse{list=[]model.Quiz}}
// @Router /api/quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}

	quizzes, total, err := c.QuizService.ListQuizzes(ctx.Query("subject"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  quizzes,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 测验详情
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid quiz ID")
		return
	}

	q, err := c.QuizService.GetQuiz(uint(id))
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, q)
}

// @Summary 开始答题
// @Description 为当前用户创建一次新的测验尝试
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param id path int true "测验ID"
// @Success 201 {object} util.Response{data=model.QuizAttempt}
// @Router /api/quizzes/{id}/attempts [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid quiz ID")
		return
	}

	attempt, err := c.QuizService.StartAttempt(user.UserID, uint(id))
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Created(ctx, attempt)
}

// @Summary 标记闪卡已看
// @Description 学习阶段翻看一张闪卡 全部看完才能进入答题
// @Tags 测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attemptId path int true "尝试ID"
// @Param index path int true "卡片序号（从0开始）"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Router /api/attempts/{attemptId}/cards/{index} [put]
func (c *QuizController) ViewCard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attemptID, err := strconv.Atoi(ctx.Param("attemptId"))
	if err != nil {
		util.BadRequest(ctx, "invalid attempt ID")
		return
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "invalid card index")
		return
	}

	attempt, err := c.QuizService.ViewCard(user.UserID, uint(attemptID), index)
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}

// @Summary 进入答题阶段
// @Description 所有闪卡看完后从学习阶段切换到答题阶段
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param attemptId path int true "尝试ID"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Router /api/attempts/{attemptId}/begin [post]
func (c *QuizController) BeginAnswering(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attemptID, err := strconv.Atoi(ctx.Param("attemptId"))
	if err != nil {
		util.BadRequest(ctx, "invalid attempt ID")
		return
	}

	attempt, err := c.QuizService.BeginAnswering(user.UserID, uint(attemptID))
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}

type SetAnswerRequest struct {
	Answer string `json:"answer"`
}

// @Summary 作答
// @Description 记录或覆盖某题的答案 留空表示跳过
// @Tags 测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attemptId path int true "尝试ID"
// @Param index path int true "题目序号（从0开始）"
// @Param request body SetAnswerRequest true "答案"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Router /api/attempts/{attemptId}/answers/{index} [put]
func (c *QuizController) SetAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attemptID, err := strconv.Atoi(ctx.Param("attemptId"))
	if err != nil {
		util.BadRequest(ctx, "invalid attempt ID")
		return
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "invalid question index")
		return
	}

	var req SetAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.QuizService.SetAnswer(user.UserID, uint(attemptID), index, req.Answer)
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}

// @Summary 提交测验
// @Description 判分、入账经验值 重复提交返回 409
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param attemptId path int true "尝试ID"
// @Success 200 {object} util.Response{data=service.SubmitOutcome}
// @Failure 409 {object} util.Response "已提交过"
// @Router /api/attempts/{attemptId}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attemptID, err := strconv.Atoi(ctx.Param("attemptId"))
	if err != nil {
		util.BadRequest(ctx, "invalid attempt ID")
		return
	}

	outcome, err := c.QuizService.SubmitAttempt(user.UserID, uint(attemptID))
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, outcome)
}

// @Summary 查看测验结果
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param attemptId path int true "尝试ID"
// @Success 200 {object} util.Response{data=model.QuizResult}
// @Router /api/attempts/{attemptId}/result [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attemptID, err := strconv.Atoi(ctx.Param("attemptId"))
	if err != nil {
		util.BadRequest(ctx, "invalid attempt ID")
		return
	}

	result, err := c.QuizService.GetAttemptResult(user.UserID, uint(attemptID))
	if err != nil {
		quizError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 历史成绩
// @Description 当前用户最近的测验成绩
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param limit query int false "返回数量" default(20)
// @Success 200 {object} util.Response{data=[]model.QuizResult}
// @Router /api/attempts/results [get]
func (c *QuizController) GetHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	results, err := c.QuizService.GetUserResults(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}
