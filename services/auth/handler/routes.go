package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/staffloop/identity/internal/pkg/constants"
	"github.com/staffloop/identity/internal/pkg/middleware"
	"github.com/staffloop/identity/internal/pkg/models"
	httpHandler "github.com/staffloop/identity/services/auth/handler/http"
)

// Handler wires the auth HTTP handlers onto the router.
type Handler struct {
	authHandler *httpHandler.AuthHandler
	engine      middleware.Authorizer
	cfg         *models.Config
}

// NewHandler creates a new handler instance
func NewHandler(authHandler *httpHandler.AuthHandler, engine middleware.Authorizer, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		engine:      engine,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth API routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public OTP session routes
	e.POST("/auth/register", h.authHandler.StartRegister)
	e.POST("/auth/login", h.authHandler.StartLogin)
	e.POST("/auth/otp/submit", h.authHandler.SubmitCode)
	e.POST("/auth/otp/consume", h.authHandler.Consume)

	// Authenticated user lookup for the CRUD screens
	users := e.Group("/users")
	users.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))
	users.GET("/:id", h.authHandler.GetUser,
		middleware.RequireCapability(h.engine, constants.CapUsersView))
}
