package autherr

const (
	defaultDiscoveryMessage                     = "Discovery failed for the OpenID Connect configuration."
	defaultMissingStateMessage                  = "The state parameter is missing."
	defaultInvalidStateMessage                  = "The state parameter is invalid."
	defaultAuthorizationMessage                 = "An error occurred during the authorization flow."
	defaultAuthorizationCodeGrantRequestMessage = "An error occurred while preparing or performing the authorization code grant request."
	defaultAuthorizationCodeGrantMessage        = "An error occurred while trying to exchange the authorization code."
	defaultBackchannelLogoutMessage             = "An error occurred while completing the backchannel logout request."
)

// DiscoveryError reports that the provider metadata could not be fetched or
// parsed.
type DiscoveryError struct {
	message string
}

func NewDiscoveryError(opts ...Option) *DiscoveryError {
	return &DiscoveryError{message: messageOr(defaultDiscoveryMessage, opts)}
}

func (e *DiscoveryError) Error() string { return e.message }

func (e *DiscoveryError) Code() Code { return CodeDiscovery }

// MissingStateError reports a callback without a state parameter.
type MissingStateError struct {
	message string
}

func NewMissingStateError(opts ...Option) *MissingStateError {
	return &MissingStateError{message: messageOr(defaultMissingStateMessage, opts)}
}

func (e *MissingStateError) Error() string { return e.message }

func (e *MissingStateError) Code() Code { return CodeMissingState }

// InvalidStateError reports a callback whose state does not match a pending
// authorization request.
type InvalidStateError struct {
	message string
}

func NewInvalidStateError(opts ...Option) *InvalidStateError {
	return &InvalidStateError{message: messageOr(defaultInvalidStateMessage, opts)}
}

func (e *InvalidStateError) Error() string { return e.message }

func (e *InvalidStateError) Code() Code { return CodeInvalidState }

// AuthorizationError reports an error delivered by the provider on the
// authorization callback.
type AuthorizationError struct {
	message string
	cause   *ProviderError
}

// NewAuthorizationError requires the provider's error. The message describes
// what was being done and is never derived from the cause.
func NewAuthorizationError(cause *ProviderError, opts ...Option) (*AuthorizationError, error) {
	if cause == nil {
		return nil, ErrCauseRequired
	}

	return &AuthorizationError{
		message: messageOr(defaultAuthorizationMessage, opts),
		cause:   cause,
	}, nil
}

func (e *AuthorizationError) Error() string { return e.message }

func (e *AuthorizationError) Code() Code { return CodeAuthorization }

func (e *AuthorizationError) Cause() *ProviderError { return e.cause }

func (e *AuthorizationError) Unwrap() error { return e.cause }

// AuthorizationCodeGrantRequestError reports that the code grant request
// could not be built, sent or processed.
type AuthorizationCodeGrantRequestError struct {
	message string
}

func NewAuthorizationCodeGrantRequestError(opts ...Option) *AuthorizationCodeGrantRequestError {
	return &AuthorizationCodeGrantRequestError{
		message: messageOr(defaultAuthorizationCodeGrantRequestMessage, opts),
	}
}

func (e *AuthorizationCodeGrantRequestError) Error() string { return e.message }

func (e *AuthorizationCodeGrantRequestError) Code() Code { return CodeAuthorizationCodeGrantRequest }

// AuthorizationCodeGrantError reports an OAuth2 error response from the token
// endpoint during the code exchange.
type AuthorizationCodeGrantError struct {
	message string
	cause   *ProviderError
}

func NewAuthorizationCodeGrantError(cause *ProviderError, opts ...Option) (*AuthorizationCodeGrantError, error) {
	if cause == nil {
		return nil, ErrCauseRequired
	}

	return &AuthorizationCodeGrantError{
		message: messageOr(defaultAuthorizationCodeGrantMessage, opts),
		cause:   cause,
	}, nil
}

func (e *AuthorizationCodeGrantError) Error() string { return e.message }

func (e *AuthorizationCodeGrantError) Code() Code { return CodeAuthorizationCodeGrant }

func (e *AuthorizationCodeGrantError) Cause() *ProviderError { return e.cause }

func (e *AuthorizationCodeGrantError) Unwrap() error { return e.cause }

// BackchannelLogoutError reports a logout notification that could not be
// completed.
type BackchannelLogoutError struct {
	message string
}

func NewBackchannelLogoutError(opts ...Option) *BackchannelLogoutError {
	return &BackchannelLogoutError{message: messageOr(defaultBackchannelLogoutMessage, opts)}
}

func (e *BackchannelLogoutError) Error() string { return e.message }

func (e *BackchannelLogoutError) Code() Code { return CodeBackchannelLogout }
