package auth

import "errors"

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidAdminPassword = errors.New("invalid admin password")
	ErrAdminNotFound        = errors.New("admin account missing")
)
