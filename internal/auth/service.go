package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"devflow-backend/internal/config"
	"devflow-backend/internal/database/models"
	apperrors "devflow-backend/internal/errors"
	"devflow-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const tokenTypeRefresh = "refresh"

// devPassword is the shared password for development logins. The dev
// login path is rejected outright outside the development environment.
const devPassword = "devpassword"

// IdentityProvider resolves bearer tokens to identities and looks up
// user records through the provider's admin API.
type IdentityProvider interface {
	VerifyToken(ctx context.Context, token string) (*UserInfo, error)
	GetUserInfo(ctx context.Context, authentikID string) (*AdminUserInfo, error)
}

// Claims are the JWT claims carried by locally issued tokens. TokenType
// is empty on access tokens and "refresh" on refresh tokens.
type Claims struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	TokenType string `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair is the access/refresh token pair returned by login and refresh
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Service exchanges provider identities for local users and issues the
// application's own signed tokens.
type Service struct {
	cfg      *config.Config
	provider IdentityProvider
	userRepo *repository.UserRepository
}

// NewService creates a new auth service
func NewService(cfg *config.Config, provider IdentityProvider, userRepo *repository.UserRepository) *Service {
	return &Service{cfg: cfg, provider: provider, userRepo: userRepo}
}

// Login verifies the provider token, creates or updates the local user
// record, and issues a token pair for the user.
func (s *Service) Login(ctx context.Context, providerToken string) (*TokenPair, *models.User, error) {
	info, err := s.provider.VerifyToken(ctx, providerToken)
	if err != nil {
		return nil, nil, apperrors.NewAuthenticationError(fmt.Sprintf("identity verification failed: %v", err))
	}

	user, err := s.syncUser(info)
	if err != nil {
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, apperrors.ErrUserInactive
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// DevLogin issues tokens for an existing user looked up by email, or by
// username when no email matches. It only works in the development
// environment and never creates users.
func (s *Service) DevLogin(identifier, password string) (*TokenPair, *models.User, error) {
	if !s.cfg.IsDevelopment() {
		return nil, nil, apperrors.NewAuthenticationError("development login is disabled")
	}
	if password != devPassword {
		return nil, nil, apperrors.NewAuthenticationError("invalid credentials")
	}

	user, err := s.userRepo.GetByEmail(identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.userRepo.GetByUsername(identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NewAuthenticationError("invalid credentials")
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, nil, apperrors.ErrUserInactive
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Refresh validates a refresh token and issues a fresh token pair
func (s *Service) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	return s.issueTokens(user)
}

// Verify parses an access token and rejects refresh tokens presented in
// its place.
func (s *Service) Verify(accessToken string) (*Claims, error) {
	claims, err := s.parseToken(accessToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType == tokenTypeRefresh {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// SyncUser refreshes a local user record from the provider's admin API.
// It creates the user when the provider knows them but the local
// database does not yet.
func (s *Service) SyncUser(ctx context.Context, authentikID string) (*models.User, error) {
	info, err := s.provider.GetUserInfo(ctx, authentikID)
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("provider lookup failed: %v", err))
	}

	user, err := s.syncUser(&UserInfo{
		Sub:               authentikID,
		Email:             info.Email,
		PreferredUsername: info.Username,
		Name:              info.Name,
		IsSuperuser:       info.IsSuperuser,
	})
	if err != nil {
		return nil, err
	}

	if user.IsActive != info.IsActive {
		user.IsActive = info.IsActive
		if err := s.userRepo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to sync user: %w", err)
		}
	}
	return user, nil
}

// syncUser creates the local user on first login and refreshes the
// synced fields on every subsequent one.
func (s *Service) syncUser(info *UserInfo) (*models.User, error) {
	user, err := s.userRepo.GetByAuthentikID(info.Sub)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		user = &models.User{
			AuthentikID: info.Sub,
			Email:       info.Email,
			Username:    info.PreferredUsername,
			FullName:    info.Name,
			IsActive:    true,
			IsAdmin:     info.IsSuperuser,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return user, nil
	}

	user.Email = info.Email
	user.Username = info.PreferredUsername
	user.FullName = info.Name
	user.IsAdmin = info.IsSuperuser
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to sync user: %w", err)
	}
	return user, nil
}

func (s *Service) issueTokens(user *models.User) (*TokenPair, error) {
	accessTTL := time.Duration(s.cfg.AccessTokenMinutes) * time.Minute
	refreshTTL := time.Duration(s.cfg.RefreshTokenDays) * 24 * time.Hour

	access, err := s.signToken(user, "", accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.signToken(user, tokenTypeRefresh, refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *Service) signToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "devflow-backend",
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *Service) parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
