package oidc

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	apptoken "github.com/KasumiMercury/primind-auth/internal/auth/app/token"
	domainsession "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	"github.com/zitadel/oidc/v3/pkg/client"
	"github.com/zitadel/oidc/v3/pkg/client/rp"
)

const (
	connectionGrantType          = "urn:auth0:params:oauth:grant-type:token-exchange:federated-connection-access-token"
	connectionSubjectTokenType   = "urn:ietf:params:oauth:token-type:refresh_token"
	connectionRequestedTokenType = "http://auth0.com/oauth/token-type/federated-connection-access-token"
)

// connectionTokenRequest is the form body of a federated connection token
// exchange. Client credentials travel in the body (client_secret_post).
type connectionTokenRequest struct {
	GrantType          string `schema:"grant_type"`
	ClientID           string `schema:"client_id"`
	ClientSecret       string `schema:"client_secret"`
	SubjectTokenType   string `schema:"subject_token_type"`
	SubjectToken       string `schema:"subject_token"`
	RequestedTokenType string `schema:"requested_token_type"`
	Connection         string `schema:"connection"`
	LoginHint          string `schema:"login_hint,omitempty"`
}

// tokenCaller points the zitadel client helpers at the discovered token
// endpoint of a relying party.
type tokenCaller struct {
	rp.RelyingParty
}

func (c tokenCaller) TokenEndpoint() string {
	return c.OAuthConfig().Endpoint.TokenURL
}

// ExchangeForConnection trades the session refresh token for an access
// token of an upstream connection (federated connection token exchange).
func (p *RPProvider) ExchangeForConnection(
	ctx context.Context,
	refreshToken string,
	req apptoken.ConnectionRequest,
) (domainsession.ConnectionTokenSet, error) {
	request := connectionTokenRequest{
		GrantType:          connectionGrantType,
		ClientID:           p.clientID,
		ClientSecret:       p.clientSecret,
		SubjectTokenType:   connectionSubjectTokenType,
		SubjectToken:       refreshToken,
		RequestedTokenType: connectionRequestedTokenType,
		Connection:         req.Connection,
		LoginHint:          req.LoginHint,
	}

	resp, err := client.CallTokenExchangeEndpoint(ctx, request, nil, tokenCaller{p.rp})
	if err != nil {
		if providerErr, ok := providerErrorFrom(err); ok {
			return domainsession.ConnectionTokenSet{}, rejected(providerErr)
		}

		var transportErr *url.Error
		if errors.As(err, &transportErr) {
			return domainsession.ConnectionTokenSet{}, fmt.Errorf("connection exchange request: %w", err)
		}

		return domainsession.ConnectionTokenSet{}, fmt.Errorf("%w: %v", ErrTokenResponseMalformed, err)
	}

	if resp.AccessToken == "" {
		return domainsession.ConnectionTokenSet{}, fmt.Errorf("%w: access_token missing", ErrTokenResponseMalformed)
	}

	set := domainsession.ConnectionTokenSet{
		Connection:  req.Connection,
		AccessToken: resp.AccessToken,
		Scope:       resp.Scopes.String(),
	}

	if resp.ExpiresIn > 0 {
		set.ExpiresAt = p.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	return set, nil
}
