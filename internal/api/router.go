package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/auth"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/department"
	departmentHttp "github.com/nekogravitycat/stadium-schedule-backend/internal/department/http"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/logger"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/schedule"
	scheduleHttp "github.com/nekogravitycat/stadium-schedule-backend/internal/schedule/http"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/stadium"
	stadiumHttp "github.com/nekogravitycat/stadium-schedule-backend/internal/stadium/http"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/usage"
	usageHttp "github.com/nekogravitycat/stadium-schedule-backend/internal/usage/http"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/user"
	userHttp "github.com/nekogravitycat/stadium-schedule-backend/internal/user/http"
)

// ReadyCheck reports whether a backing dependency can serve traffic.
type ReadyCheck func(ctx context.Context) error

// Config holds the dependencies required to build the router.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *slog.Logger

	UserService       user.Service
	StadiumService    stadium.Service
	DepartmentService department.Service
	ScheduleService   schedule.Service
	UsageService      usage.Service
	JWTManager        *auth.JWTManager

	// ReadyChecks are run by /readyz, keyed by dependency name.
	ReadyChecks map[string]ReadyCheck
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()

	// Global Middleware:
	// - RequestID: Tags every request so log lines and error responses can be correlated.
	// - AccessLog: Structured request logging.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(logger.RequestID(), logger.AccessLog(log), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", readyHandler(cfg.ReadyChecks))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// sysAdminMiddleware: Further checks if the authenticated user has System Admin privileges.
	sysAdminMiddleware := auth.RequireSystemAdmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	stadiumHandler := stadiumHttp.NewHandler(cfg.StadiumService)
	departmentHandler := departmentHttp.NewHandler(cfg.DepartmentService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService)
	usageHandler := usageHttp.NewHandler(cfg.UsageService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, sysAdminMiddleware)
		stadiumHttp.RegisterRoutes(v1, stadiumHandler, authMiddleware, sysAdminMiddleware)
		departmentHttp.RegisterRoutes(v1, departmentHandler, authMiddleware, sysAdminMiddleware)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler, authMiddleware)
		usageHttp.RegisterRoutes(v1, usageHandler, authMiddleware)
	}

	return r
}

func corsConfig(cfg Config) cors.Config {
	config := cors.DefaultConfig()
	if cfg.IsProduction {
		config.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		config.AllowOrigins = []string{
			"http://localhost:3000", // Frontend dev server
			"http://localhost:8081", // Swagger
		}
	}
	// cors panics on an empty origin list.
	if len(config.AllowOrigins) == 0 {
		config.AllowOriginFunc = func(string) bool { return false }
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", logger.RequestIDHeader}
	config.ExposeHeaders = []string{logger.RequestIDHeader}
	return config
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func readyHandler(checks map[string]ReadyCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		results := gin.H{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}
		c.JSON(status, gin.H{"status": http.StatusText(status), "checks": results})
	}
}
