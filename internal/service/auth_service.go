package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kanwar911/BTP-case-craft/internal/config"
	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

type authService struct {
	repos  *repository.Repositories
	cfg    config.AuthConfig
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(repos *repository.Repositories, cfg config.AuthConfig, logger *zap.Logger) *authService {
	return &authService{
		repos:  repos,
		cfg:    cfg,
		logger: logger,
	}
}

// RegisterInput carries the fields for account creation.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	FullName string
}

// Register creates a new customer account.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	fields := map[string]string{}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		fields["email"] = "valid email required"
	}
	if len(in.Username) < 3 {
		fields["username"] = "minimum 3 characters"
	}
	if len(in.Password) < 8 {
		fields["password"] = "minimum 8 characters"
	}
	if len(fields) > 0 {
		return nil, &errors.ErrValidation{Message: "invalid registration data", Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        in.Email,
		Username:     in.Username,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.repos.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()), zap.String("username", user.Username))
	return user, nil
}

// Login verifies credentials and issues a signed access token.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.repos.User.GetByUsername(ctx, username)
	if err != nil {
		// Same response for unknown user and bad password
		return "", nil, &errors.ErrUnauthorized{Message: "incorrect username or password"}
	}
	if !user.IsActive {
		return "", nil, &errors.ErrUnauthorized{Message: "account is inactive"}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, &errors.ErrUnauthorized{Message: "incorrect username or password"}
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return "", nil, err
	}

	return token, user, nil
}

// GetUser fetches a user by ID.
func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repos.User.GetByID(ctx, id)
}

func (s *authService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
