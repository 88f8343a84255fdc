package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/staffloop/identity/internal/pkg/constants"
	"github.com/staffloop/identity/internal/pkg/middleware"
	"github.com/staffloop/identity/internal/pkg/models"
	httpHandler "github.com/staffloop/identity/services/org/handler/http"
)

// Handler wires the org HTTP handlers onto the router.
type Handler struct {
	roleHandler *httpHandler.RoleHandler
	engine      middleware.Authorizer
	cfg         *models.Config
}

// NewHandler creates a new handler instance
func NewHandler(roleHandler *httpHandler.RoleHandler, engine middleware.Authorizer, cfg *models.Config) *Handler {
	return &Handler{
		roleHandler: roleHandler,
		engine:      engine,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the org API routes. Every route requires a
// valid token and the roles.manage capability.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	manage := middleware.RequireCapability(h.engine, constants.CapRolesManage)

	institutes := e.Group("/institutes", middleware.JWTAuthMiddleware(h.cfg.JWT))
	institutes.POST("/:instituteID/roles", h.roleHandler.CreateRole, manage)
	institutes.GET("/:instituteID/roles", h.roleHandler.GetTree, manage)

	roles := e.Group("/roles", middleware.JWTAuthMiddleware(h.cfg.JWT))
	roles.PUT("/:id/parent", h.roleHandler.Reparent, manage)
	roles.GET("/:id/ancestors", h.roleHandler.Ancestors, manage)
	roles.DELETE("/:id", h.roleHandler.DeleteRole, manage)
	roles.POST("/:id/grants", h.roleHandler.GrantCapability, manage)
	roles.DELETE("/:id/grants/:capability", h.roleHandler.RevokeCapability, manage)
}
