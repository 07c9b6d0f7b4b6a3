package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskforge/task-api/docs"
	"github.com/taskforge/task-api/internal/api/handler"
	"github.com/taskforge/task-api/internal/api/middleware"
	"github.com/taskforge/task-api/internal/auth"
	"github.com/taskforge/task-api/internal/core/service"
	mongodb "github.com/taskforge/task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskforge/task-api/internal/infrastructure/db/redis"
	"github.com/taskforge/task-api/internal/pkg/config"
)

// Dependencies carries the external collaborators the router needs.
type Dependencies struct {
	DB       *mongo.Database
	Redis    *redis.Client
	Tokens   *auth.TokenManager
	Activity service.ActivityRecorder
	Log      zerolog.Logger
	Cfg      *config.Config
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log, deps.Cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Repositories and services ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	taskRepo := mongodb.NewTaskRepository(deps.DB)
	productRepo := mongodb.NewProductRepository(deps.DB)
	activityRepo := mongodb.NewActivityRepository(deps.DB)

	authService := service.NewAuthService(userRepo, deps.Tokens, deps.Log)
	taskService := service.NewTaskService(taskRepo, deps.Activity, deps.Log)
	productService := service.NewProductService(productRepo, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	productHandler := handler.NewProductHandler(productService)
	activityHandler := handler.NewActivityHandler(activityRepo)

	authMW := middleware.Auth(deps.Tokens)
	adminMW := middleware.RequireAdmin()
	limiter := redisdb.NewRateLimiter(deps.Redis, deps.Cfg.LoginRateLimit, deps.Cfg.LoginRateWindow)
	loginLimitMW := middleware.LoginRateLimit(limiter)

	// --- Auth routes ---
	// Validation runs before anything else; a malformed body is rejected
	// regardless of who sent it.
	e.POST("/auth/register", authHandler.Register,
		middleware.ValidateBody(handler.RegisterPayload))
	e.POST("/auth/login", authHandler.Login,
		middleware.ValidateBody(handler.LoginPayload),
		loginLimitMW)

	// --- Task routes (bearer) ---
	e.GET("/tasks", taskHandler.List, authMW)
	e.POST("/tasks", taskHandler.Create,
		middleware.ValidateBody(handler.CreateTaskPayload),
		authMW)
	e.PUT("/tasks/:id", taskHandler.Update,
		middleware.ValidateBody(handler.UpdateTaskPayload),
		authMW)
	e.DELETE("/tasks/:id", taskHandler.Delete, authMW)

	// --- Product routes (public list, admin mutation) ---
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create,
		middleware.ValidateBody(handler.CreateProductPayload),
		authMW, adminMW)
	e.DELETE("/products/:id", productHandler.Delete, authMW, adminMW)

	// --- Activity trail (admin) ---
	e.GET("/activity", activityHandler.List, authMW, adminMW)

	// --- Operational routes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
