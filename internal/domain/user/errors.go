package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserEmailExists       = errors.New("email already registered")
	ErrOAuthAccountExists    = errors.New("oauth account already registered")
	ErrAdminAccessRequired   = errors.New("admin access required")
	ErrEmployeeNotLinked     = errors.New("user has no linked employee record")
	ErrInvalidPasswordLength = errors.New("password must be at least 8 characters")
)
