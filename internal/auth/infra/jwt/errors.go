package jwt

import "errors"

var (
	ErrSessionRequiredForToken = errors.New("session is required for token generation")
	ErrJWTSignerCreationFailed = errors.New("jwt signer creation failed")
	ErrSessionIDMissing        = errors.New("session id missing in token")
)
