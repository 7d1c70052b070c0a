package oidc

import "errors"

var (
	ErrProviderConfigNil      = errors.New("provider config is nil")
	ErrTokenEndpointRejected  = errors.New("token endpoint returned an error response")
	ErrTokenResponseMalformed = errors.New("token endpoint response is malformed")
	ErrIDTokenMissing         = errors.New("token response has no id token")
	ErrEndSessionUnsupported  = errors.New("provider does not advertise an end session endpoint")
	ErrLogoutTokenEmpty       = errors.New("logout token is empty")
	ErrLogoutTokenSignature   = errors.New("logout token signature is invalid")
	ErrLogoutTokenClaims      = errors.New("logout token claims are invalid")
	ErrLogoutTokenEvent       = errors.New("logout token lacks the backchannel logout event")
	ErrLogoutTokenNonce       = errors.New("logout token must not carry a nonce")
	ErrLogoutTokenTarget      = errors.New("logout token needs sub or sid")
)
