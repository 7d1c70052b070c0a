package repository

import "errors"

var (
	ErrUserRequired          = errors.New("user is required")
	ErrSessionRequired       = errors.New("session is required")
	ErrSessionAlreadyExpired = errors.New("session already expired")
	ErrIdentityRequired      = errors.New("identity is required")
	ErrParamsRequired        = errors.New("oidc params required")
	ErrParamsAlreadyExpired  = errors.New("oidc params already expired")
	ErrRecordCorrupted       = errors.New("stored record is corrupted")
)
