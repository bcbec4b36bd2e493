package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorhub_backend/internal/config"
	"tutorhub_backend/internal/controller"
	"tutorhub_backend/internal/repository"
	"tutorhub_backend/internal/service"
	"tutorhub_backend/internal/util"
	"tutorhub_backend/pkg/configwatcher"
	"tutorhub_backend/pkg/database"
	"tutorhub_backend/pkg/logger"
	"tutorhub_backend/pkg/monitoring"
	"tutorhub_backend/pkg/security"
	"tutorhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	progress *repository.ProgressRepository
	xpTx     *repository.XPTransactionRepository
	quiz     *repository.QuizRepository
	session  *repository.SessionRepository
	goal     *repository.GoalRepository
	tutor    *repository.TutorRepository
	blog     *repository.BlogRepository
}

type services struct {
	storage  *service.StorageService
	ai       *service.AIService
	progress *service.ProgressService
	quiz     *service.QuizService
	session  *service.SessionService
	goal     *service.GoalService
	tutor    *service.TutorService
	blog     *service.BlogService
	user     *service.UserService
}

type controllers struct {
	health   *controller.HealthController
	progress *controller.ProgressController
	quiz     *controller.QuizController
	session  *controller.SessionController
	goal     *controller.GoalController
	tutor    *controller.TutorController
	blog     *controller.BlogController
	user     *controller.UserController
	chat     *controller.ChatController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		progress: repository.NewProgressRepository(db),
		xpTx:     repository.NewXPTransactionRepository(db),
		quiz:     repository.NewQuizRepository(db),
		session:  repository.NewSessionRepository(db),
		goal:     repository.NewGoalRepository(db),
		tutor:    repository.NewTutorRepository(db),
		blog:     repository.NewBlogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.ai = service.NewAIService(cfg.AI)
	s.progress = service.NewProgressService(repos.progress, repos.xpTx, repos.user, db, rdb)
	s.quiz = service.NewQuizService(repos.quiz, s.progress, s.ai)
	s.session = service.NewSessionService(repos.session, repos.tutor, s.progress, cfg)
	s.goal = service.NewGoalService(repos.goal, s.progress)
	s.tutor = service.NewTutorService(repos.tutor, s.storage)
	s.blog = service.NewBlogService(repos.blog, logger.Log)
	s.user = service.NewUserService(repos.user, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		health:   controller.NewHealthController(db),
		progress: controller.NewProgressController(s.progress),
		quiz:     controller.NewQuizController(s.quiz),
		session:  controller.NewSessionController(s.session),
		goal:     controller.NewGoalController(s.goal),
		tutor:    controller.NewTutorController(s.tutor),
		blog:     controller.NewBlogController(s.blog),
		user:     controller.NewUserController(s.user),
		chat:     controller.NewChatController(s.ai),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, cfg.RateWindow()))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())

	// 中间件通过 context 拿配置，热更新后新请求立即生效
	router.Use(func(c *gin.Context) {
		c.Set("config", a.Config)
		c.Next()
	})
}

func (a *App) startBackgroundTasks(s *services) {
	// 定时发布博客
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			s.blog.PublishScheduled(time.Now())
		}
	}()

	// 配置热更新
	go configwatcher.WatchConfig("configs/config.yaml", func(cfg *config.Config) {
		logger.Log.Info("Config reloaded")
		a.Config = cfg
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("tutorhub", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
