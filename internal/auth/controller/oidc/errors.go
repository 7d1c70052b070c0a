package oidc

import "errors"

var (
	ErrLoginNotConfigured  = errors.New("login is not configured")
	ErrLogoutNotConfigured = errors.New("logout is not configured")
)
