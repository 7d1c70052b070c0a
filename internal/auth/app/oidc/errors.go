package oidc

import "errors"

var (
	ErrLinkedUserMissing   = errors.New("oidc identity is linked to a missing user")
	ErrOIDCNotConfigured   = errors.New("oidc providers are not configured")
	ErrProviderUnsupported = errors.New("oidc provider is not configured")
	ErrRequestNil          = errors.New("request is required")
)
