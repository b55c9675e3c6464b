package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session token")
	ErrExpiredSession     = errors.New("session expired")
)
