package oidc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	applogout "github.com/KasumiMercury/primind-auth/internal/auth/app/logout"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/zitadel/oidc/v3/pkg/oidc"
)

const (
	backchannelLogoutEvent = "http://schemas.openid.net/event/backchannel-logout"
	logoutTokenLeeway      = time.Minute
)

type logoutTokenClaims struct {
	jwt.Claims
	SessionID string                     `json:"sid"`
	Events    map[string]json.RawMessage `json:"events"`
	Nonce     *string                    `json:"nonce"`
}

// LogoutTokenVerifier validates OpenID Connect back-channel logout tokens.
type LogoutTokenVerifier struct {
	issuer   string
	clientID string
	keySet   oidc.KeySet
	clock    clock.Clock
}

func NewLogoutTokenVerifier(issuer, clientID string, keySet oidc.KeySet, clk clock.Clock) *LogoutTokenVerifier {
	if clk == nil {
		clk = &clock.RealClock{}
	}

	return &LogoutTokenVerifier{
		issuer:   issuer,
		clientID: clientID,
		keySet:   keySet,
		clock:    clk,
	}
}

func (v *LogoutTokenVerifier) Verify(ctx context.Context, rawToken string) (*applogout.LogoutClaims, error) {
	if rawToken == "" {
		return nil, ErrLogoutTokenEmpty
	}

	jws, err := jose.ParseSigned(rawToken, idTokenAlgorithms)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoutTokenSignature, err)
	}

	payload, err := v.keySet.VerifySignature(ctx, jws)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoutTokenSignature, err)
	}

	var claims logoutTokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoutTokenClaims, err)
	}

	if claims.IssuedAt == nil {
		return nil, fmt.Errorf("%w: iat missing", ErrLogoutTokenClaims)
	}

	expected := jwt.Expected{
		Issuer:      v.issuer,
		AnyAudience: jwt.Audience{v.clientID},
		Time:        v.clock.Now(),
	}

	if err := claims.ValidateWithLeeway(expected, logoutTokenLeeway); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoutTokenClaims, err)
	}

	if _, ok := claims.Events[backchannelLogoutEvent]; !ok {
		return nil, ErrLogoutTokenEvent
	}

	if claims.Nonce != nil {
		return nil, ErrLogoutTokenNonce
	}

	if claims.Subject == "" && claims.SessionID == "" {
		return nil, ErrLogoutTokenTarget
	}

	return &applogout.LogoutClaims{
		Subject:   claims.Subject,
		SessionID: claims.SessionID,
	}, nil
}

// VerifyLogoutToken checks a logout token issued by this provider.
func (p *RPProvider) VerifyLogoutToken(ctx context.Context, rawToken string) (*applogout.LogoutClaims, error) {
	return p.logoutVerifier.Verify(ctx, rawToken)
}
