package auth

import (
	"context"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// GoogleRedirectURL starts the OAuth flow for the given browser.
	GoogleRedirectURL(userAgent string) (url string, state string, err error)
	// GoogleCallback exchanges the code and logs the user in, creating the
	// account on first sight of a verified Google email.
	GoogleCallback(ctx context.Context, code string) (TokenResponse, error)
}
