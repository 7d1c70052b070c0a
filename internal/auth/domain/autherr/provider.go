package autherr

import "strings"

const defaultProviderMessage = "An error occurred while interacting with the authorization server."

// UntrustedText is text controlled by the authorization server or by whoever
// crafted the callback URL. It must only reach markup through html/template.
type UntrustedText string

func (t UntrustedText) String() string {
	return string(t)
}

// ProviderError is an error reported by the authorization server, such as the
// error and error_description of an OAuth2 error response.
type ProviderError struct {
	code    UntrustedText
	message UntrustedText
}

// NewProviderError builds a ProviderError. An empty message falls back to a
// generic description; the code is taken verbatim from the provider.
func NewProviderError(code, message string) (*ProviderError, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrProviderCode
	}

	if message == "" {
		message = defaultProviderMessage
	}

	return &ProviderError{
		code:    UntrustedText(code),
		message: UntrustedText(message),
	}, nil
}

func (e *ProviderError) Code() UntrustedText {
	return e.code
}

func (e *ProviderError) Message() UntrustedText {
	return e.message
}

func (e *ProviderError) Error() string {
	return string(e.message)
}

// Equal reports whether both errors carry the same code and message.
func (e *ProviderError) Equal(other *ProviderError) bool {
	if e == nil || other == nil {
		return e == other
	}

	return e.code == other.code && e.message == other.message
}
