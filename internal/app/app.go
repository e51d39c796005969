package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"course_share_backend/internal/config"
	"course_share_backend/internal/controller"
	"course_share_backend/internal/repository"
	"course_share_backend/internal/service"
	"course_share_backend/pkg/configwatcher"
	"course_share_backend/pkg/database"
	"course_share_backend/pkg/logger"
	"course_share_backend/pkg/monitoring"
	"course_share_backend/pkg/security"
	"course_share_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	mu sync.RWMutex // 保护热更新的配置字段
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	rating     *repository.RatingRepository
	enrollment *repository.EnrollmentRepository
}

type services struct {
	auth        *service.AuthService
	course      *service.CourseService
	rating      *service.RatingService
	user        *service.UserService
	leaderboard *service.LeaderboardService
}

type controllers struct {
	auth        *controller.AuthController
	course      *controller.CourseController
	rating      *controller.RatingController
	enrollment  *controller.EnrollmentController
	user        *controller.UserController
	leaderboard *controller.LeaderboardController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		rating:     repository.NewRatingRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.leaderboard = service.NewLeaderboardService(repos.course, repos.user, rdb)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.course = service.NewCourseService(repos.course, repos.enrollment, s.leaderboard)
	s.rating = service.NewRatingService(repos.rating, repos.course, s.leaderboard)
	s.user = service.NewUserService(repos.user, repos.course, repos.enrollment, s.leaderboard)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	isRelease := a.Config.Server.Mode == "release"
	return &controllers{
		auth:        controller.NewAuthController(s.auth, s.user, isRelease),
		course:      controller.NewCourseController(s.course),
		rating:      controller.NewRatingController(s.rating, s.course),
		enrollment:  controller.NewEnrollmentController(s.course),
		user:        controller.NewUserController(s.user),
		leaderboard: controller.NewLeaderboardController(s.leaderboard),
		health:      controller.NewHealthController(db),
	}
}

// allowedOrigins 供 CORS 中间件回调，配置热更新后下一个请求即生效
func (a *App) allowedOrigins() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.Config.CORS.AllowedOrigins
}

// rateLimits 供限流中间件回调，与 allowedOrigins 一样读取热更新后的配置
func (a *App) rateLimits() (int, time.Duration) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	maxRequests := a.Config.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(a.Config.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	return maxRequests, window
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(a.allowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.rateLimits))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		a.mu.Lock()
		a.Config.CORS = newCfg.CORS
		a.Config.RateLimit = newCfg.RateLimit
		a.mu.Unlock()
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
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

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("course-share", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	app.watchConfig()

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	}
	return gin.DebugMode
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
