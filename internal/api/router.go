package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/pixelnova/projecthub/docs"
	"github.com/pixelnova/projecthub/internal/api/handler"
	"github.com/pixelnova/projecthub/internal/api/middleware"
	"github.com/pixelnova/projecthub/internal/core/ports"
)

// RouterConfig carries everything NewRouter needs beyond the services.
type RouterConfig struct {
	AllowedOrigins []string
	StaticDir      string // empty disables static serving
	DataDir        string
	Metrics        bool // wire echoprometheus middleware and /metrics
}

// Dependencies groups the services exposed over HTTP.
type Dependencies struct {
	Auth     ports.AuthService
	Tokens   ports.TokenService
	Projects ports.ProjectService
	AI       ports.AIService
	Redis    *redis.Client // nil when the prompt cache is disabled
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig, deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	if cfg.Metrics {
		e.Use(echoprometheus.NewMiddleware("projecthub"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	projectHandler := handler.NewProjectHandler(deps.Projects)
	aiHandler := handler.NewAIHandler(deps.AI)
	authRequired := middleware.Auth(deps.Tokens)

	// --- Auth routes ---
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/profile", authHandler.Profile, authRequired)

	// --- Project routes (owner-scoped) ---
	projects := e.Group("/api/projects", authRequired)
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)

	// --- AI proxy ---
	e.POST("/api/ai/:action", aiHandler.Run, authRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.DataDir, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- API docs ---
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Optional static frontend (SPA fallback to index.html) ---
	if cfg.StaticDir != "" {
		e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root:  cfg.StaticDir,
			Index: "index.html",
			HTML5: true,
		}))
	}

	return e
}
