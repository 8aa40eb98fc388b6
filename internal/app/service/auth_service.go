package service

import (
	"context"
	"errors"
	"fmt"

	"fitastic/internal/common"
	"fitastic/internal/common/security"
	"fitastic/internal/domain/model"
	"fitastic/internal/domain/repository"
	"fitastic/internal/platform/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService owns the token lifecycle: registration, login, refresh
// rotation and revocation. Every issued pair is persisted as a live token
// record; revocation flips the record's logged_out flag and is terminal.
type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) *AuthService {
	return &AuthService{userRepo: userRepo, tokenRepo: tokenRepo}
}

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3,max=50"`
	LastName  string `json:"lastName" validate:"required,min=3,max=50"`
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Message      string `json:"message"`
}

// Register creates the user with role "user" and immediately issues a live
// access/refresh pair.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: hashed,
		Role:           model.RoleUser,
	}

	// The unique index on username is authoritative; the repo maps the
	// violation to a conflict.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	logging.L.Info("user registered", zap.String("username", user.Username))
	return &AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Message:      "User registration was successful",
	}, nil
}

// Login verifies the credentials, revokes every live token the user still
// has, and issues a fresh pair. Steady state is one live pair per user.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		logging.L.Warn("login failed", zap.String("username", req.Username))
		return nil, common.ErrInvalidCredentials
	}

	if _, err := s.tokenRepo.RevokeAllByUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke previous tokens: %w", err)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	logging.L.Info("user logged in", zap.String("username", user.Username))
	return &AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Message:      "User login was successful",
	}, nil
}

// RefreshToken rotates the pair identified by the Bearer refresh token in
// the Authorization header. Any failure leaves the store untouched, so a
// rejected refresh is idempotent. An unknown subject is reported exactly
// like an invalid token to avoid leaking which usernames exist.
func (s *AuthService) RefreshToken(ctx context.Context, authHeader string) (*AuthResponse, error) {
	raw, ok := security.BearerToken(authHeader)
	if !ok {
		return nil, fmt.Errorf("missing bearer token: %w", common.ErrUnauthorized)
	}

	username, err := security.ExtractSubject(raw)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("refresh token subject unknown: %w", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	valid, err := s.IsValidRefreshToken(ctx, raw, user)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, fmt.Errorf("refresh token expired or revoked: %w", common.ErrUnauthorized)
	}

	if _, err := s.tokenRepo.RevokeAllByUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke previous tokens: %w", err)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	logging.L.Info("token pair rotated", zap.String("username", user.Username))
	return &AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Message:      "New token generated",
	}, nil
}

// Logout revokes the access token carried in the Authorization header. A
// token the store does not know, or one already revoked, is a no-op:
// logout is idempotent and never fails toward the client.
func (s *AuthService) Logout(ctx context.Context, authHeader string) error {
	raw, ok := security.BearerToken(authHeader)
	if !ok {
		return nil
	}

	stored, err := s.tokenRepo.FindByAccessToken(ctx, raw)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up token: %w", err)
	}
	if stored.LoggedOut {
		return nil
	}

	if err := s.tokenRepo.Revoke(ctx, stored); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	logging.L.Info("user logged out", zap.String("user_id", stored.UserID))
	return nil
}

// IsValidAccessToken reports whether raw is a well-formed, unexpired access
// token issued to user that is still live in the store. The store check is
// what makes server-side revocation effective: the signature alone cannot
// be invalidated.
func (s *AuthService) IsValidAccessToken(ctx context.Context, raw string, user *model.User) (bool, error) {
	return s.isValidToken(ctx, raw, user, s.tokenRepo.IsAccessTokenLive)
}

// IsValidRefreshToken is the same check against the refresh-token index.
func (s *AuthService) IsValidRefreshToken(ctx context.Context, raw string, user *model.User) (bool, error) {
	return s.isValidToken(ctx, raw, user, s.tokenRepo.IsRefreshTokenLive)
}

func (s *AuthService) isValidToken(ctx context.Context, raw string, user *model.User, isLive func(context.Context, string) (bool, error)) (bool, error) {
	username, err := security.ExtractSubject(raw)
	if err != nil {
		return false, nil
	}
	if username != user.Username {
		return false, nil
	}
	return isLive(ctx, raw)
}

func (s *AuthService) issueTokenPair(ctx context.Context, user *model.User) (*model.Token, error) {
	accessToken, err := security.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := security.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	token := &model.Token{
		ID:           uuid.NewString(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		LoggedOut:    false,
		UserID:       user.ID,
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to persist token pair: %w", err)
	}
	return token, nil
}
