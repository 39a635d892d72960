package auth

import "errors"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNotEditor    = errors.New("token does not grant editor access")
)
