package autherr

import "fmt"

// AccessTokenErrorCode enumerates why the session access token could not be
// returned.
type AccessTokenErrorCode string

const (
	AccessTokenMissingSession       = AccessTokenErrorCode(CodeMissingSession)
	AccessTokenMissingRefreshToken  = AccessTokenErrorCode(CodeMissingRefreshToken)
	AccessTokenFailedToRefreshToken = AccessTokenErrorCode(CodeFailedToRefreshToken)
)

var accessTokenMessages = map[AccessTokenErrorCode]string{
	AccessTokenMissingSession:       "The user does not have an active session.",
	AccessTokenMissingRefreshToken:  "The access token has expired and a refresh token was not provided. The user needs to re-authenticate.",
	AccessTokenFailedToRefreshToken: "The access token has expired and there was an error while trying to refresh it.",
}

// Valid reports whether c belongs to the enumeration.
func (c AccessTokenErrorCode) Valid() bool {
	_, ok := accessTokenMessages[c]

	return ok
}

// RequiresCause reports whether errors with this code carry a provider error.
func (c AccessTokenErrorCode) RequiresCause() bool {
	return c == AccessTokenFailedToRefreshToken
}

// AccessTokenError reports a failure to return the session's access token.
type AccessTokenError struct {
	code    AccessTokenErrorCode
	message string
	cause   *ProviderError
}

// NewAccessTokenError builds an AccessTokenError. The cause must be set for
// failed_to_refresh_token and must be nil otherwise.
func NewAccessTokenError(code AccessTokenErrorCode, cause *ProviderError, opts ...Option) (*AccessTokenError, error) {
	defaultMessage, ok := accessTokenMessages[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}

	if code.RequiresCause() != (cause != nil) {
		return nil, fmt.Errorf("%w: %s", ErrCauseMismatch, code)
	}

	return &AccessTokenError{
		code:    code,
		message: messageOr(defaultMessage, opts),
		cause:   cause,
	}, nil
}

// MissingSession reports that no session is present.
func MissingSession(opts ...Option) *AccessTokenError {
	return &AccessTokenError{
		code:    AccessTokenMissingSession,
		message: messageOr(accessTokenMessages[AccessTokenMissingSession], opts),
	}
}

// MissingRefreshToken reports that a refresh was needed but the session holds
// no refresh token.
func MissingRefreshToken(opts ...Option) *AccessTokenError {
	return &AccessTokenError{
		code:    AccessTokenMissingRefreshToken,
		message: messageOr(accessTokenMessages[AccessTokenMissingRefreshToken], opts),
	}
}

// RefreshFailed reports that the provider rejected the refresh.
func RefreshFailed(cause *ProviderError, opts ...Option) (*AccessTokenError, error) {
	return NewAccessTokenError(AccessTokenFailedToRefreshToken, cause, opts...)
}

func (e *AccessTokenError) Error() string { return e.message }

func (e *AccessTokenError) Code() Code { return Code(e.code) }

func (e *AccessTokenError) TokenErrorCode() AccessTokenErrorCode { return e.code }

func (e *AccessTokenError) Cause() *ProviderError { return e.cause }

func (e *AccessTokenError) Unwrap() error {
	if e.cause == nil {
		return nil
	}

	return e.cause
}

// ConnectionTokenErrorCode enumerates why an access token for a connection
// could not be returned.
type ConnectionTokenErrorCode string

const (
	ConnectionTokenMissingSession               = ConnectionTokenErrorCode(CodeMissingSession)
	ConnectionTokenMissingRefreshToken          = ConnectionTokenErrorCode(CodeMissingRefreshToken)
	ConnectionTokenFailedToExchangeRefreshToken = ConnectionTokenErrorCode(CodeFailedToExchangeRefreshToken)
)

var connectionTokenMessages = map[ConnectionTokenErrorCode]string{
	ConnectionTokenMissingSession:               "The user does not have an active session.",
	ConnectionTokenMissingRefreshToken:          "A refresh token was not present, Connected Accounts requires a refresh token to be present.",
	ConnectionTokenFailedToExchangeRefreshToken: "There was an error trying to exchange the refresh token for a connection access token.",
}

func (c ConnectionTokenErrorCode) Valid() bool {
	_, ok := connectionTokenMessages[c]

	return ok
}

func (c ConnectionTokenErrorCode) RequiresCause() bool {
	return c == ConnectionTokenFailedToExchangeRefreshToken
}

// AccessTokenForConnectionError reports a failure to obtain an access token
// for a connection through token exchange.
type AccessTokenForConnectionError struct {
	code    ConnectionTokenErrorCode
	message string
	cause   *ProviderError
}

// NewAccessTokenForConnectionError builds an AccessTokenForConnectionError.
// The cause must be set for failed_to_exchange_refresh_token and must be nil
// otherwise.
func NewAccessTokenForConnectionError(
	code ConnectionTokenErrorCode,
	cause *ProviderError,
	opts ...Option,
) (*AccessTokenForConnectionError, error) {
	defaultMessage, ok := connectionTokenMessages[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}

	if code.RequiresCause() != (cause != nil) {
		return nil, fmt.Errorf("%w: %s", ErrCauseMismatch, code)
	}

	return &AccessTokenForConnectionError{
		code:    code,
		message: messageOr(defaultMessage, opts),
		cause:   cause,
	}, nil
}

func ConnectionMissingSession(opts ...Option) *AccessTokenForConnectionError {
	return &AccessTokenForConnectionError{
		code:    ConnectionTokenMissingSession,
		message: messageOr(connectionTokenMessages[ConnectionTokenMissingSession], opts),
	}
}

func ConnectionMissingRefreshToken(opts ...Option) *AccessTokenForConnectionError {
	return &AccessTokenForConnectionError{
		code:    ConnectionTokenMissingRefreshToken,
		message: messageOr(connectionTokenMessages[ConnectionTokenMissingRefreshToken], opts),
	}
}

func ConnectionExchangeFailed(cause *ProviderError, opts ...Option) (*AccessTokenForConnectionError, error) {
	return NewAccessTokenForConnectionError(ConnectionTokenFailedToExchangeRefreshToken, cause, opts...)
}

func (e *AccessTokenForConnectionError) Error() string { return e.message }

func (e *AccessTokenForConnectionError) Code() Code { return Code(e.code) }

func (e *AccessTokenForConnectionError) TokenErrorCode() ConnectionTokenErrorCode { return e.code }

func (e *AccessTokenForConnectionError) Cause() *ProviderError { return e.cause }

func (e *AccessTokenForConnectionError) Unwrap() error {
	if e.cause == nil {
		return nil
	}

	return e.cause
}
