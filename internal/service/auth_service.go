package service

import (
	"context"
	"log/slog"

	"github.com/tripsplit/tripsplit/internal/auth"
	"github.com/tripsplit/tripsplit/internal/models"
)

// AuthService handles account registration and login, issuing JWT session
// tokens on success.
type AuthService struct {
	authenticator auth.Authenticator
	jwt           *auth.JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(authenticator auth.Authenticator, jwt *auth.JWTManager) *AuthService {
	return &AuthService{authenticator: authenticator, jwt: jwt}
}

// AuthResponse is the result of a successful register or login.
type AuthResponse struct {
	Token string
	User  *models.User
}

// Register creates a new account and returns a session token.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*AuthResponse, error) {
	slog.Info("Register request received", "email", email)

	user, err := s.authenticator.Register(ctx, email, name, password)
	if err != nil {
		slog.Warn("Register failed", "email", email, "error", err)
		return nil, err
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		slog.Error("Token generation failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	slog.Info("User registered", "user_id", user.ID)
	return &AuthResponse{Token: token, User: user}, nil
}

// Login authenticates an existing account and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	slog.Info("Login request received", "email", email)

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		slog.Warn("Login failed", "email", email)
		return nil, err
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		slog.Error("Token generation failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	slog.Info("User logged in", "user_id", user.ID)
	return &AuthResponse{Token: token, User: user}, nil
}
