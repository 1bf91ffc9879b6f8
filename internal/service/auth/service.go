package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/auth"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/user"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/jwt"
	"github.com/klinikmedika/absensi-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
		googleService:  googleService,
	}
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:      accessToken,
		ExpiresAt:        accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
		User:             user.ToUserResponse(u),
	}, nil
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	exists, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if exists {
		return auth.TokenResponse{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashStr,
		Role:         user.RoleEmployee,
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(created)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrPasswordLoginOnly
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// RefreshToken implements auth.AuthService.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// GoogleRedirectURL implements auth.AuthService.
func (s *AuthServiceImpl) GoogleRedirectURL(userAgent string) (string, string, error) {
	if s.googleService == nil {
		return "", "", fmt.Errorf("google oauth is not configured")
	}
	state := s.googleService.GenerateState(userAgent)
	if state == "" {
		return "", "", auth.ErrInvalidOAuthState
	}
	return s.googleService.RedirectURL(state), state, nil
}

// GoogleCallback implements auth.AuthService.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.TokenResponse, error) {
	if s.googleService == nil {
		return auth.TokenResponse{}, fmt.Errorf("google oauth is not configured")
	}

	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify oauth code: %w", err)
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	u, err := s.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, err
		}
		provider := "google"
		u, err = s.UserRepository.Create(ctx, user.User{
			Email:           info.Email,
			Role:            user.RoleEmployee,
			OAuthProvider:   &provider,
			OAuthProviderID: &info.GoogleID,
		})
		if err != nil {
			return auth.TokenResponse{}, err
		}
		return s.issueTokens(u)
	}

	if u.OAuthProviderID == nil {
		u, err = s.UserRepository.LinkGoogleAccount(ctx, info.GoogleID, info.Email)
		if err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return s.issueTokens(u)
}
