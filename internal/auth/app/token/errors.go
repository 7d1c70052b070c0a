package token

import "errors"

var (
	ErrRequestNil               = errors.New("request is required")
	ErrConnectionRequired       = errors.New("connection name is required")
	ErrProviderUnsupported      = errors.New("session provider is not configured")
	ErrTokenEndpointUnavailable = errors.New("token endpoint could not be reached")
)
