package client

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidEmail       = errors.New("email is required")
)
