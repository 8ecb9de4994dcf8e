package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/finbrief/member-portal/internal/api/handler"
	"github.com/finbrief/member-portal/internal/api/middleware"
	"github.com/finbrief/member-portal/internal/core/domain"
	"github.com/finbrief/member-portal/internal/core/service"
	"github.com/finbrief/member-portal/internal/infrastructure/config"
	mongouser "github.com/finbrief/member-portal/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	// Routes are registered without trailing slashes; callers using the
	// slashed forms ("/users/me/", "/auth/token/") are normalised before
	// routing.
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("member_portal"))

	// --- Dependencies ---
	userRepo := mongouser.NewUserRepository(db)
	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, codec, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, authService)
	contentHandler := handler.NewContentHandler()

	// --- Public routes ---
	e.GET("/", contentHandler.Welcome)
	e.POST("/auth/token", authHandler.Token)
	e.POST("/register", userHandler.Register)
	e.GET("/users/me", userHandler.Me)

	// --- Gated member content ---
	e.GET("/financial-markets", contentHandler.FinancialMarkets, middleware.Authorize(authService, domain.GateUser))
	e.GET("/company-insights", contentHandler.CompanyInsights, middleware.Authorize(authService, domain.GateStaff))
	e.GET("/system-administration", contentHandler.SystemAdministration, middleware.Authorize(authService, domain.GateAdmin))

	// --- User administration (admin only) ---
	admin := middleware.Authorize(authService, domain.GateAdmin)
	e.POST("/users", userHandler.Create, admin)
	e.GET("/users", userHandler.List, admin)
	e.GET("/users/:id", userHandler.Get, admin)
	e.PATCH("/users/:id", userHandler.Update, admin)
	e.DELETE("/users/:id", userHandler.Delete, admin)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)             // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)   // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
