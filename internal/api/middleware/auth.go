package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/config"
	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
)

const UserContextKey = "user"

// parseBearer extracts the bearer token from the Authorization header.
func parseBearer(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// resolveUser verifies the token signature and expiry, then loads the user.
// Claims are never trusted before verification.
func resolveUser(c *gin.Context, cfg config.AuthConfig, repos *repository.Repositories, tokenString string) (*domain.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, err
	}

	return repos.User.GetByID(c.Request.Context(), userID)
}

// RequireAuth authenticates requests with a verified JWT and rejects
// requests without one.
func RequireAuth(cfg config.AuthConfig, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := parseBearer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			c.Abort()
			return
		}

		user, err := resolveUser(c, cfg, repos, tokenString)
		if err != nil {
			logger.Warn("Failed to authenticate request", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account is inactive"})
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// OptionalAuth attributes the request to a user when a valid token is
// present and continues as guest otherwise. An invalid token is treated as
// absent, never as an error, so checkout stays open to guests.
func OptionalAuth(cfg config.AuthConfig, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := parseBearer(c)
		if !ok {
			c.Next()
			return
		}

		user, err := resolveUser(c, cfg, repos, tokenString)
		if err != nil {
			logger.Debug("Ignoring invalid token on optional-auth route", zap.Error(err))
			c.Next()
			return
		}
		if user.IsActive {
			c.Set(UserContextKey, user)
		}
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "not enough permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserFromContext retrieves the authenticated user from the Gin context
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	val, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// UserIDOrGuest returns the authenticated user's ID, or the guest
// identifier when the request carries no valid session.
func UserIDOrGuest(c *gin.Context) string {
	if user, ok := GetUserFromContext(c); ok {
		return user.ID.String()
	}
	return domain.GuestUserID
}
