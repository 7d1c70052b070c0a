package oidc

import (
	"errors"

	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
	"github.com/zitadel/oidc/v3/pkg/oidc"
	"golang.org/x/oauth2"
)

// providerErrorFrom extracts the OAuth2 error response carried by err, if
// the authorization server sent one.
func providerErrorFrom(err error) (*autherr.ProviderError, bool) {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode != "" {
		providerErr, buildErr := autherr.NewProviderError(retrieveErr.ErrorCode, retrieveErr.ErrorDescription)
		if buildErr == nil {
			return providerErr, true
		}
	}

	var oidcErr *oidc.Error
	if errors.As(err, &oidcErr) && oidcErr.ErrorType != "" {
		providerErr, buildErr := autherr.NewProviderError(string(oidcErr.ErrorType), oidcErr.Description)
		if buildErr == nil {
			return providerErr, true
		}
	}

	return nil, false
}

// rejected wraps a provider error so callers can both match
// ErrTokenEndpointRejected and extract the cause with errors.As.
func rejected(providerErr *autherr.ProviderError) error {
	return errors.Join(ErrTokenEndpointRejected, providerErr)
}
