package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/api/middleware"
	"github.com/kanwar911/BTP-case-craft/internal/config"
	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
	"github.com/kanwar911/BTP-case-craft/internal/service"
	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// TokenResponse matches the OAuth2-style response the frontend expects
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
		IsAdmin:  user.IsAdmin,
	}
}

// HandleRegister handles POST /api/auth/register
func HandleRegister(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": err.Error()})
			return
		}

		authService := service.NewAuthService(repos, cfg.Auth, logger)
		user, err := authService.Register(c.Request.Context(), service.RegisterInput{
			Email:    req.Email,
			Username: req.Username,
			Password: req.Password,
			FullName: req.FullName,
		})
		if err != nil {
			switch e := err.(type) {
			case *errors.ErrValidation:
				c.JSON(http.StatusBadRequest, gin.H{"error": e.Message, "fields": e.Fields})
			case *errors.ErrConflict:
				c.JSON(http.StatusConflict, gin.H{"error": e.Message})
			default:
				logger.Error("Failed to register user", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		c.JSON(http.StatusCreated, toUserResponse(user))
	}
}

// HandleLogin handles POST /api/auth/token
func HandleLogin(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		// Accept both JSON and form bodies; the original frontend posts
		// x-www-form-urlencoded.
		if err := c.ShouldBind(&req); err != nil {
			req.Username = c.PostForm("username")
			req.Password = c.PostForm("password")
			if req.Username == "" || req.Password == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
				return
			}
		}

		authService := service.NewAuthService(repos, cfg.Auth, logger)
		token, _, err := authService.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if e, ok := err.(*errors.ErrUnauthorized); ok {
				c.JSON(http.StatusUnauthorized, gin.H{"error": e.Error()})
				return
			}
			logger.Error("Failed to log in user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// HandleMe handles GET /api/auth/me
func HandleMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, toUserResponse(user))
	}
}
