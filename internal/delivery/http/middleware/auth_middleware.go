package middleware

import (
	"net/http"
	"strings"

	"salesapi/internal/domain/entity"
	"salesapi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys for the authenticated identity.
const (
	keyUserName = "userName"
	keyUserRole = "userRole"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set identity on the context for handlers and role checks
		c.Set(keyUserName, claims.Name)
		c.Set(keyUserRole, claims.Role)

		return next(c)
	}
}

// RequirePermission is a middleware factory that checks the caller's role
// grants at least the given permission level. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(minimum entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleVal := c.Get(keyUserRole)
			role, ok := roleVal.(string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if permissionForRole(role) < minimum {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + minimum.String() + "' access"})
			}

			return next(c)
		}
	}
}

// permissionForRole maps the seeded role labels onto permission levels.
// Unknown labels grant nothing.
func permissionForRole(role string) entity.Permission {
	switch role {
	case "Usuário":
		return entity.PermissionUser
	case "Gerente":
		return entity.PermissionManager
	case "Administrador":
		return entity.PermissionAdministrator
	default:
		return 0
	}
}
