package oidc

import (
	"net/url"
	"strings"
	"time"
	"unicode"
)

type ProviderID string

const (
	ProviderGoogle  ProviderID = "google"
	ProviderDefault ProviderID = "default"

	ParamsExpirationDuration = 10 * time.Minute
)

// Params is the transaction persisted between the authorization redirect and
// the callback.
type Params struct {
	provider     ProviderID
	state        string
	nonce        string
	codeVerifier string
	returnTo     string
	createdAt    time.Time
}

func NewParams(provider ProviderID, state, nonce, codeVerifier string, createdAt time.Time) (*Params, error) {
	return NewParamsWithReturnTo(provider, state, nonce, codeVerifier, "", createdAt)
}

// NewParamsWithReturnTo also records where the user goes after login. Only
// same-origin paths are accepted.
func NewParamsWithReturnTo(provider ProviderID, state, nonce, codeVerifier, returnTo string, createdAt time.Time) (*Params, error) {
	if provider == "" {
		return nil, ErrProviderInvalid
	}

	if state == "" {
		return nil, ErrStateEmpty
	}

	if nonce == "" {
		return nil, ErrNonceEmpty
	}

	if codeVerifier == "" {
		return nil, ErrCodeVerifierEmpty
	}

	if returnTo != "" && !IsLocalPath(returnTo) {
		return nil, ErrReturnToInvalid
	}

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &Params{
		provider:     provider,
		state:        state,
		nonce:        nonce,
		codeVerifier: codeVerifier,
		returnTo:     returnTo,
		createdAt:    createdAt,
	}, nil
}

func (p *Params) Provider() ProviderID {
	return p.provider
}

func (p *Params) State() string {
	return p.state
}

func (p *Params) Nonce() string {
	return p.nonce
}

func (p *Params) CodeVerifier() string {
	return p.codeVerifier
}

func (p *Params) ReturnTo() string {
	return p.returnTo
}

func (p *Params) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Params) ExpiresAt() time.Time {
	return p.createdAt.Add(ParamsExpirationDuration)
}

func (p *Params) IsExpired(now time.Time) bool {
	return now.After(p.ExpiresAt())
}

// IsLocalPath accepts absolute paths on this origin. Backslashes and control
// characters are rejected since browsers normalize "/\\host" to "//host".
func IsLocalPath(raw string) bool {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return false
	}

	if strings.ContainsRune(raw, '\\') || strings.IndexFunc(raw, unicode.IsControl) >= 0 {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return parsed.Scheme == "" && parsed.Host == "" && parsed.User == nil
}
