package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/staffloop/identity/internal/pkg/jwt"
	"github.com/staffloop/identity/internal/pkg/models"
	"github.com/staffloop/identity/internal/utils"
)

// Context keys populated by JWTAuthMiddleware.
const (
	ContextUserID      = "user_id"
	ContextRoleID      = "role_id"
	ContextInstituteID = "institute_id"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := (*claims)[ContextUserID].(string)
			if !ok || userID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, userID)
			if roleID, ok := (*claims)[ContextRoleID].(string); ok {
				c.Set(ContextRoleID, roleID)
			}
			if instituteID, ok := (*claims)[ContextInstituteID].(string); ok {
				c.Set(ContextInstituteID, instituteID)
			}

			return next(c)
		}
	}
}
