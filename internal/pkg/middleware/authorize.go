package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/staffloop/identity/internal/utils"
)

// Authorizer decides whether the role assigned to a principal carries a
// capability, directly or through an ancestor role.
type Authorizer interface {
	Authorize(ctx context.Context, roleID, capability string) (bool, error)
}

// RequireCapability gates a route on the caller's role carrying the
// capability. Denials are generic: no detail on which ancestor lacked
// the grant, and engine errors deny as well.
func RequireCapability(engine Authorizer, capability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleID, _ := c.Get(ContextRoleID).(string)
			if roleID == "" {
				return utils.ForbiddenResponse(c, "")
			}

			allowed, err := engine.Authorize(c.Request().Context(), roleID, capability)
			if err != nil || !allowed {
				return utils.ForbiddenResponse(c, "")
			}

			return next(c)
		}
	}
}
