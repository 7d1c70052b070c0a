package domain

import "errors"

var (
	ErrUserIDEmpty            = errors.New("user ID must be specified")
	ErrExpiresAtMissing       = errors.New("expiresAt must be specified")
	ErrExpiresBeforeStart     = errors.New("expiresAt must be after createdAt")
	ErrSessionIDEmpty         = errors.New("session ID must be specified")
	ErrSessionIDInvalidFormat = errors.New("session ID must be a valid UUID")
	ErrSessionIDInvalidV7     = errors.New("session ID must be a UUIDv7")
	ErrSessionIDGeneration    = errors.New("failed to generate session ID")
	ErrAccessTokenEmpty       = errors.New("access token must be specified")
	ErrConnectionEmpty        = errors.New("connection must be specified")
	ErrLogoutTargetEmpty      = errors.New("logout target needs a subject or a session id")
	ErrLogoutTargetProvider   = errors.New("logout target needs a provider")
	ErrSessionNotFound        = errors.New("session not found")
)
