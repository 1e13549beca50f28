package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"course_qa_backend/internal/config"
	"course_qa_backend/internal/controller"
	"course_qa_backend/internal/repository"
	"course_qa_backend/internal/service"
	"course_qa_backend/pkg/database"
	"course_qa_backend/pkg/logger"
	"course_qa_backend/pkg/monitoring"
	"course_qa_backend/pkg/security"
	"course_qa_backend/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	question     *repository.QuestionRepository
	answer       *repository.AnswerRepository
	review       *repository.ReviewRepository
	trust        *repository.TrustedReviewerRepository
	roleRequest  *repository.RoleRequestRepository
	scorecard    *repository.ScorecardRepository
	adminRequest *repository.AdminRequestRepository
	staff        *repository.StaffRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	question     *service.QuestionService
	review       *service.ReviewService
	trust        *service.TrustService
	scorecard    *service.ScorecardService
	roleRequest  *service.RoleRequestService
	adminRequest *service.AdminRequestService
	staff        *service.StaffService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	question     *controller.QuestionController
	review       *controller.ReviewController
	trust        *controller.TrustController
	scorecard    *controller.ScorecardController
	roleRequest  *controller.RoleRequestController
	adminRequest *controller.AdminRequestController
	staff        *controller.StaffController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 配置热加载入口，依次通知注册的回调
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	logger.Log.Info("Config reloaded")
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		question:     repository.NewQuestionRepository(db),
		answer:       repository.NewAnswerRepository(db),
		review:       repository.NewReviewRepository(db),
		trust:        repository.NewTrustedReviewerRepository(db),
		roleRequest:  repository.NewRoleRequestRepository(db),
		scorecard:    repository.NewScorecardRepository(db),
		adminRequest: repository.NewAdminRequestRepository(db),
		staff:        repository.NewStaffRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	return &services{
		auth:         service.NewAuthService(repos.user, cfg),
		user:         service.NewUserService(repos.user),
		question:     service.NewQuestionService(repos.question, repos.answer, repos.review, rdb),
		review:       service.NewReviewService(repos.review),
		trust:        service.NewTrustService(repos.trust, repos.user),
		scorecard:    service.NewScorecardService(repos.scorecard),
		roleRequest:  service.NewRoleRequestService(repos.roleRequest, repos.user),
		adminRequest: service.NewAdminRequestService(repos.adminRequest),
		staff:        service.NewStaffService(repos.staff, repos.user),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user, s.auth),
		question:     controller.NewQuestionController(s.question),
		review:       controller.NewReviewController(s.review),
		trust:        controller.NewTrustController(s.trust),
		scorecard:    controller.NewScorecardController(s.scorecard),
		roleRequest:  controller.NewRoleRequestController(s.roleRequest),
		adminRequest: controller.NewAdminRequestController(s.adminRequest),
		staff:        controller.NewStaffController(s.staff),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("course-qa-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
