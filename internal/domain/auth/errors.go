package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrInvalidOAuthState   = errors.New("invalid oauth state")
	ErrPasswordLoginOnly   = errors.New("account has no password login; use oauth")
)
