package session

import "errors"

var (
	ErrSessionSecretMissing   = errors.New("session secret is required")
	ErrSessionDurationInvalid = errors.New("session duration must be positive")
	ErrPersistIDTokenInvalid  = errors.New("session persist id token flag must be a boolean")
	ErrCookieSecureInvalid    = errors.New("session cookie secure flag must be a boolean")
)
