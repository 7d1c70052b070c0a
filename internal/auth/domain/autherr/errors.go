// Package autherr defines the errors surfaced by the OIDC authentication
// flows: discovery, the authorization redirect and callback, the
// authorization code grant, access token refresh, connection token exchange
// and backchannel logout.
//
// Every error carries a stable, machine-readable Code. Errors caused by the
// authorization server wrap a *ProviderError whose text is controlled by a
// third party and must be escaped before it is rendered.
package autherr

import "errors"

// Code is a stable identifier suitable for programmatic branching.
type Code string

const (
	CodeDiscovery                     Code = "discovery_error"
	CodeMissingState                  Code = "missing_state"
	CodeInvalidState                  Code = "invalid_state"
	CodeAuthorization                 Code = "authorization_error"
	CodeAuthorizationCodeGrantRequest Code = "authorization_code_grant_request_error"
	CodeAuthorizationCodeGrant        Code = "authorization_code_grant_error"
	CodeBackchannelLogout             Code = "backchannel_logout_error"
	CodeMissingSession                Code = "missing_session"
	CodeMissingRefreshToken           Code = "missing_refresh_token"
	CodeFailedToRefreshToken          Code = "failed_to_refresh_token"
	CodeFailedToExchangeRefreshToken  Code = "failed_to_exchange_refresh_token"
)

var (
	ErrCauseRequired = errors.New("provider error cause is required")
	ErrCauseMismatch = errors.New("provider error cause does not match error code")
	ErrUnknownCode   = errors.New("error code is not part of the enumeration")
	ErrProviderCode  = errors.New("provider error code must be specified")
)

// Error is implemented by every error in this package.
type Error interface {
	error
	Code() Code
}

var (
	_ Error = (*DiscoveryError)(nil)
	_ Error = (*MissingStateError)(nil)
	_ Error = (*InvalidStateError)(nil)
	_ Error = (*AuthorizationError)(nil)
	_ Error = (*AuthorizationCodeGrantRequestError)(nil)
	_ Error = (*AuthorizationCodeGrantError)(nil)
	_ Error = (*BackchannelLogoutError)(nil)
	_ Error = (*AccessTokenError)(nil)
	_ Error = (*AccessTokenForConnectionError)(nil)
)

// CodeOf returns the code of the first Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var authErr Error
	if errors.As(err, &authErr) {
		return authErr.Code(), true
	}

	return "", false
}

// CauseOf returns the provider error attached to err, if any.
func CauseOf(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr, true
	}

	return nil, false
}

// Option customizes an error at construction.
type Option func(*options)

type options struct {
	message string
}

// WithMessage replaces the default message. The code is never affected.
func WithMessage(message string) Option {
	return func(o *options) {
		o.message = message
	}
}

func messageOr(defaultMessage string, opts []Option) string {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.message == "" {
		return defaultMessage
	}

	return o.message
}

// Codes lists every code an Error in this package can report.
func Codes() []Code {
	return []Code{
		CodeDiscovery,
		CodeMissingState,
		CodeInvalidState,
		CodeAuthorization,
		CodeAuthorizationCodeGrantRequest,
		CodeAuthorizationCodeGrant,
		CodeBackchannelLogout,
		CodeMissingSession,
		CodeMissingRefreshToken,
		CodeFailedToRefreshToken,
		CodeFailedToExchangeRefreshToken,
	}
}
