package oidc

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	appoidc "github.com/KasumiMercury/primind-auth/internal/auth/app/oidc"
	oidccfg "github.com/KasumiMercury/primind-auth/internal/auth/config/oidc"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	domainsession "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/zitadel/oidc/v3/pkg/client/rp"
	httphelper "github.com/zitadel/oidc/v3/pkg/http"
	"github.com/zitadel/oidc/v3/pkg/oidc"
	"golang.org/x/oauth2"
)

var idTokenAlgorithms = []jose.SignatureAlgorithm{
	jose.RS256, jose.RS384, jose.RS512,
	jose.ES256, jose.ES384, jose.ES512,
	jose.PS256, jose.PS384, jose.PS512,
}

type nonceContextKey struct{}

// RPProvider wraps a zitadel/oidc RelyingParty together with the client
// settings the relying party does not expose.
type RPProvider struct {
	rp                    rp.RelyingParty
	providerID            domainoidc.ProviderID
	clientID              string
	clientSecret          string
	postLogoutRedirectURI string
	logoutVerifier        *LogoutTokenVerifier
	clock                 clock.Clock
	logger                *slog.Logger
}

type Option func(*providerOptions)

type providerOptions struct {
	httpClient *http.Client
	clock      clock.Clock
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *providerOptions) {
		o.httpClient = client
	}
}

func WithClock(clk clock.Clock) Option {
	return func(o *providerOptions) {
		o.clock = clk
	}
}

// NewRPProvider discovers the provider and creates a RelyingParty for it.
// The discovery document is fetched once. Any failure to build the relying
// party is returned as autherr.DiscoveryError.
func NewRPProvider(ctx context.Context, providerCfg oidccfg.ProviderConfig, opts ...Option) (*RPProvider, error) {
	if providerCfg == nil {
		return nil, ErrProviderConfigNil
	}

	options := providerOptions{
		httpClient: httphelper.DefaultHTTPClient,
		clock:      &clock.RealClock{},
	}
	for _, opt := range opts {
		opt(&options)
	}

	core := providerCfg.Core()
	logger := slog.Default().WithGroup("auth").WithGroup("oidc").WithGroup("provider").
		With(slog.String("provider", string(providerCfg.ProviderID())))

	relyingParty, err := discover(ctx, core.IssuerURL, func() (rp.RelyingParty, error) {
		return rp.NewRelyingPartyOIDC(
			ctx,
			core.IssuerURL,
			core.ClientID,
			core.ClientSecret,
			core.RedirectURI,
			core.Scopes,
			rp.WithHTTPClient(options.httpClient),
			rp.WithVerifierOpts(rp.WithNonce(nonceFromContext)),
		)
	})
	if err != nil {
		return nil, err
	}

	// The ID token verifier already holds a remote key set for the
	// discovered jwks_uri; logout tokens are checked against the same keys.
	keySet := relyingParty.IDTokenVerifier().KeySet

	return &RPProvider{
		rp:                    relyingParty,
		providerID:            providerCfg.ProviderID(),
		clientID:              core.ClientID,
		clientSecret:          core.ClientSecret,
		postLogoutRedirectURI: core.PostLogoutRedirectURI,
		logoutVerifier:        NewLogoutTokenVerifier(relyingParty.Issuer(), core.ClientID, keySet, options.clock),
		clock:                 options.clock,
		logger:                logger,
	}, nil
}

func nonceFromContext(ctx context.Context) string {
	nonce, _ := ctx.Value(nonceContextKey{}).(string)

	return nonce
}

func (p *RPProvider) ProviderID() domainoidc.ProviderID {
	return p.providerID
}

func (p *RPProvider) BuildAuthorizationURL(state, nonce, codeChallenge string) string {
	baseURL := rp.AuthURL(state, p.rp)

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		p.logger.Error("authorization url from relying party is invalid", slog.String("error", err.Error()))

		return baseURL
	}

	query := parsedURL.Query()
	if nonce != "" {
		query.Set("nonce", nonce)
	}

	if codeChallenge != "" {
		query.Set("code_challenge", codeChallenge)
		query.Set("code_challenge_method", "S256")
	}

	parsedURL.RawQuery = query.Encode()

	return parsedURL.String()
}

// ExchangeToken redeems the authorization code. OAuth2 error responses come
// back wrapped with ErrTokenEndpointRejected and an *autherr.ProviderError;
// everything else (transport, malformed response, ID token verification) is
// returned as is.
func (p *RPProvider) ExchangeToken(ctx context.Context, code, codeVerifier, nonce string) (*appoidc.TokenResult, error) {
	ctx = context.WithValue(ctx, nonceContextKey{}, nonce)

	tokens, err := rp.CodeExchange[*oidc.IDTokenClaims](
		ctx,
		code,
		p.rp,
		rp.WithCodeVerifier(codeVerifier),
	)
	if err != nil {
		if providerErr, ok := providerErrorFrom(err); ok {
			return nil, rejected(providerErr)
		}

		return nil, err
	}

	if tokens.IDTokenClaims == nil || tokens.IDToken == "" {
		return nil, ErrIDTokenMissing
	}

	sid, err := sessionIDClaim(tokens.IDToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenResponseMalformed, err)
	}

	return &appoidc.TokenResult{
		IDToken: appoidc.IDToken{
			Subject:   tokens.IDTokenClaims.Subject,
			Name:      tokens.IDTokenClaims.Name,
			Nonce:     tokens.IDTokenClaims.Nonce,
			SessionID: sid,
		},
		Tokens: tokenSetFrom(tokens.Token, tokens.IDToken),
	}, nil
}

// RefreshTokens runs the refresh_token grant. Error classification follows
// ExchangeToken.
func (p *RPProvider) RefreshTokens(ctx context.Context, refreshToken string) (domainsession.TokenSet, error) {
	tokens, err := rp.RefreshTokens[*oidc.IDTokenClaims](ctx, p.rp, refreshToken, "", "")
	if err != nil {
		if providerErr, ok := providerErrorFrom(err); ok {
			return domainsession.TokenSet{}, rejected(providerErr)
		}

		return domainsession.TokenSet{}, err
	}

	if tokens == nil || tokens.Token == nil || tokens.AccessToken == "" {
		return domainsession.TokenSet{}, ErrTokenResponseMalformed
	}

	return tokenSetFrom(tokens.Token, tokens.IDToken), nil
}

// EndSessionURL builds the RP-initiated logout redirect.
func (p *RPProvider) EndSessionURL(idTokenHint string) (string, error) {
	endSessionEndpoint := p.rp.GetEndSessionEndpoint()
	if endSessionEndpoint == "" {
		return "", ErrEndSessionUnsupported
	}

	endSession, err := url.Parse(endSessionEndpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEndSessionUnsupported, err)
	}

	query := endSession.Query()
	query.Set("client_id", p.clientID)

	if idTokenHint != "" {
		query.Set("id_token_hint", idTokenHint)
	}

	if p.postLogoutRedirectURI != "" {
		query.Set("post_logout_redirect_uri", p.postLogoutRedirectURI)
	}

	endSession.RawQuery = query.Encode()

	return endSession.String(), nil
}

func tokenSetFrom(token *oauth2.Token, idToken string) domainsession.TokenSet {
	set := domainsession.TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		IDToken:      idToken,
		ExpiresAt:    token.Expiry,
	}

	if scope, ok := token.Extra("scope").(string); ok {
		set.Scope = scope
	}

	return set
}

// sessionIDClaim reads sid from an ID token whose signature was already
// verified by the relying party.
func sessionIDClaim(rawIDToken string) (string, error) {
	parsed, err := jwt.ParseSigned(rawIDToken, idTokenAlgorithms)
	if err != nil {
		return "", err
	}

	var claims struct {
		SessionID string `json:"sid"`
	}

	if err := parsed.UnsafeClaimsWithoutVerification(&claims); err != nil {
		return "", err
	}

	return claims.SessionID, nil
}

func (p *RPProvider) now() time.Time {
	return p.clock.Now()
}
