package middleware

import (
	"strings"

	"minbar/internal/delivery/http/response"
	"minbar/internal/domain/repository"
	"minbar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and the admin
// capability check.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer access token and stores the caller's user
// ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "User ID missing from token")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID format in token")
		}

		c.Set("userID", userID)

		return next(c)
	}
}

// RequireAdmin checks the caller's current role in the database, so an admin
// revocation takes effect on the next request rather than at token expiry.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userIDVal := c.Get("userID")
		userID, ok := userIDVal.(uuid.UUID)
		if !ok {
			return response.Forbidden(c, "ADMIN_REQUIRED", "Permission denied: caller identity missing")
		}

		isAdmin, err := m.userRepo.IsAdmin(c.Request().Context(), userID)
		if err != nil || !isAdmin {
			return response.Forbidden(c, "ADMIN_REQUIRED", "Permission denied: administrator capability required")
		}

		return next(c)
	}
}
