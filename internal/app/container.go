package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/api"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/auth"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/db"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/department"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/event"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/schedule"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/stadium"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/usage"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *slog.Logger
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	PasswordCost int

	// OperatingHours bounds available-slot queries. Zero value means 08:00-22:00.
	OperatingHours schedule.OperatingHours

	// Redis is optional. When nil, availability reads always hit the database.
	Redis    *redis.Client
	CacheTTL time.Duration

	Publisher event.PublisherConfig
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Publisher  *event.Publisher
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	hours := cfg.OperatingHours
	if hours == (schedule.OperatingHours{}) {
		hours = schedule.DefaultOperatingHours()
	}

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.PasswordCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	eventRepo := event.NewRepository()

	var cache schedule.Cache = schedule.NoopCache{}
	if cfg.Redis != nil {
		cache = schedule.NewRedisCache(cfg.Redis, cfg.CacheTTL)
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Stadium Module
	stadiumRepo := stadium.NewPgxRepository(cfg.DBPool)
	stadiumService := stadium.NewService(stadiumRepo)

	// Department Module
	departmentRepo := department.NewPgxRepository(cfg.DBPool)
	departmentService := department.NewService(departmentRepo)

	// Schedule Module
	scheduleRepo := schedule.NewPgxRepository(cfg.DBPool, eventRepo)
	scheduleService := schedule.NewService(scheduleRepo, cache, departmentService, stadiumService, hours)

	// Usage Module
	usageRepo := usage.NewPgxRepository(cfg.DBPool, eventRepo)
	usageService := usage.NewService(usageRepo)

	readyChecks := map[string]api.ReadyCheck{
		"database": db.ReadyCheck(cfg.DBPool),
	}
	if cfg.Redis != nil {
		readyChecks["redis"] = func(ctx context.Context) error {
			return cfg.Redis.Ping(ctx).Err()
		}
	}

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:      cfg.IsProduction,
		ProdOrigins:       cfg.ProdOrigins,
		Logger:            log,
		UserService:       userService,
		StadiumService:    stadiumService,
		DepartmentService: departmentService,
		ScheduleService:   scheduleService,
		UsageService:      usageService,
		JWTManager:        jwtManager,
		ReadyChecks:       readyChecks,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Publisher:  event.NewPublisher(cfg.DBPool, eventRepo, log, cfg.Publisher),
	}
}
