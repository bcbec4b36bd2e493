package app

import (
	"tutorhub_backend/docs"
	"tutorhub_backend/internal/config"
	"tutorhub_backend/internal/middleware"
	"tutorhub_backend/internal/model"
	"tutorhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.GET("/tutors", c.tutor.Search)
		public.GET("/tutors/:userId", c.tutor.GetProfile)
		public.GET("/blog", c.blog.ListPublished)
		public.GET("/blog/:slug", c.blog.GetBySlug)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(repos.user), middleware.ActivityMiddleware(repos.user))
	{
		// 用户资料
		authGroup.GET("/users/me", c.user.GetMe)
		authGroup.PUT("/users/me", c.user.UpdateMe)
		authGroup.POST("/users/me/avatar", c.user.UploadAvatar)

		// 游戏化账本
		authGroup.GET("/progress", c.progress.GetOverview)
		authGroup.POST("/progress/checkin", c.progress.Checkin)
		authGroup.GET("/progress/badges", c.progress.GetBadges)
		authGroup.GET("/progress/leaderboard", c.progress.GetLeaderboard)

		// 测验
		authGroup.POST("/quizzes/generate", c.quiz.Generate)
		authGroup.GET("/quizzes", c.quiz.List)
		authGroup.GET("/quizzes/:id", c.quiz.Get)
		authGroup.POST("/quizzes/:id/attempts", c.quiz.StartAttempt)
		authGroup.PUT("/attempts/:attemptId/cards/:index", c.quiz.ViewCard)
		authGroup.POST("/attempts/:attemptId/begin", c.quiz.BeginAnswering)
		authGroup.PUT("/attempts/:attemptId/answers/:index", c.quiz.SetAnswer)
		authGroup.POST("/attempts/:attemptId/submit", c.quiz.Submit)
		authGroup.GET("/attempts/:attemptId/result", c.quiz.GetResult)
		authGroup.GET("/attempts/results", c.quiz.GetHistory)

		// 辅导预约
		authGroup.POST("/sessions", c.session.Book)
		authGroup.GET("/sessions", c.session.ListMine)
		authGroup.POST("/sessions/:id/cancel", c.session.Cancel)

		// 学习目标
		authGroup.GET("/goals", c.goal.List)
		authGroup.POST("/goals", c.goal.Create)
		authGroup.PATCH("/goals/:id/progress", c.goal.UpdateProgress)
		authGroup.DELETE("/goals/:id", c.goal.Delete)

		// 学习助手
		authGroup.POST("/chat/stream", c.chat.Stream)

		// 导师相关接口
		tutorGroup := authGroup.Group("/")
		tutorGroup.Use(middleware.RoleMiddleware(model.Tutor))
		{
			tutorGroup.PUT("/tutors/me", c.tutor.UpsertProfile)
			tutorGroup.POST("/tutors/me/intro-video", c.tutor.UploadIntroVideo)
			tutorGroup.GET("/sessions/teaching", c.session.ListTeaching)
			tutorGroup.POST("/sessions/:id/complete", c.session.Complete)
		}
	}

	// 管理员接口
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(repos.user), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.PUT("/users/:id/disabled", c.user.SetDisabled)
		admin.PUT("/tutors/:userId/verify", c.tutor.Verify)

		admin.GET("/blog", c.blog.ListAll)
		admin.POST("/blog", c.blog.Create)
		admin.PUT("/blog/:id", c.blog.Update)
		admin.DELETE("/blog/:id", c.blog.Delete)
	}
}
