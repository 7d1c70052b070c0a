package token

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	appsession "github.com/KasumiMercury/primind-auth/internal/auth/app/session"
	sessionCfg "github.com/KasumiMercury/primind-auth/internal/auth/config/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	domainsession "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"golang.org/x/sync/singleflight"
)

// refreshTimeout bounds a shared refresh, which outlives the caller that
// started it.
const refreshTimeout = 30 * time.Second

type SessionResolver interface {
	Resolve(ctx context.Context, sessionToken string) (*domainsession.Session, error)
}

type ConnectionRequest struct {
	Connection string
	LoginHint  string
}

// TokenProvider talks to the token endpoint of the provider that created
// a session. OAuth2 error responses must be returned so that
// autherr.CauseOf finds the *autherr.ProviderError.
type TokenProvider interface {
	RefreshTokens(ctx context.Context, refreshToken string) (domainsession.TokenSet, error)
	ExchangeForConnection(ctx context.Context, refreshToken string, req ConnectionRequest) (domainsession.ConnectionTokenSet, error)
}

type GetAccessTokenRequest struct {
	SessionToken string
	// Refresh forces a refresh even when the access token is still valid.
	Refresh bool
}

type GetAccessTokenForConnectionRequest struct {
	SessionToken string
	Connection   string
	LoginHint    string
}

type AccessTokenResult struct {
	AccessToken string
	Scope       string
	ExpiresAt   time.Time
}

type AccessTokenUseCase interface {
	GetAccessToken(ctx context.Context, req *GetAccessTokenRequest) (*AccessTokenResult, error)
	GetAccessTokenForConnection(ctx context.Context, req *GetAccessTokenForConnectionRequest) (*AccessTokenResult, error)
}

type accessTokenHandler struct {
	providers    map[domainoidc.ProviderID]TokenProvider
	sessions     SessionResolver
	sessionRepo  domainsession.SessionRepository
	sessionCfg   *sessionCfg.Config
	clock        clock.Clock
	refreshGroup singleflight.Group
	logger       *slog.Logger
}

func NewAccessTokenHandler(
	providers map[domainoidc.ProviderID]TokenProvider,
	sessions SessionResolver,
	sessionRepo domainsession.SessionRepository,
	sessionCfg *sessionCfg.Config,
) AccessTokenUseCase {
	return NewAccessTokenHandlerWithClock(providers, sessions, sessionRepo, sessionCfg, &clock.RealClock{})
}

func NewAccessTokenHandlerWithClock(
	providers map[domainoidc.ProviderID]TokenProvider,
	sessions SessionResolver,
	sessionRepo domainsession.SessionRepository,
	sessionCfg *sessionCfg.Config,
	clk clock.Clock,
) AccessTokenUseCase {
	return &accessTokenHandler{
		providers:   providers,
		sessions:    sessions,
		sessionRepo: sessionRepo,
		sessionCfg:  sessionCfg,
		clock:       clk,
		logger:      slog.Default().WithGroup("auth").WithGroup("token"),
	}
}

// GetAccessToken returns the session access token, refreshing it first when
// it is expired or the caller asks for it.
func (h *accessTokenHandler) GetAccessToken(ctx context.Context, req *GetAccessTokenRequest) (*AccessTokenResult, error) {
	if req == nil {
		return nil, ErrRequestNil
	}

	session, ok, err := h.loadSession(ctx, req.SessionToken)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, autherr.MissingSession()
	}

	tokens := session.Tokens()
	if !req.Refresh && tokens.AccessToken != "" && !tokens.Expired(h.clock.Now()) {
		return accessTokenResult(tokens), nil
	}

	if tokens.RefreshToken == "" {
		h.logger.InfoContext(ctx, "access token needs refresh but session has no refresh token")

		return nil, autherr.MissingRefreshToken()
	}

	// Concurrent refreshes of one session share a single token request, so a
	// rotating refresh token is redeemed once. Each caller waits on its own
	// context.
	resultCh := h.refreshGroup.DoChan("refresh:"+session.ID().String(), func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		return h.refresh(refreshCtx, session)
	})

	var result singleflight.Result

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result = <-resultCh:
	}

	if result.Err != nil {
		return nil, result.Err
	}

	refreshed, ok := result.Val.(domainsession.TokenSet)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected refresh result", ErrTokenEndpointUnavailable)
	}

	return accessTokenResult(refreshed), nil
}

func (h *accessTokenHandler) refresh(ctx context.Context, session *domainsession.Session) (domainsession.TokenSet, error) {
	provider, err := h.providerFor(session)
	if err != nil {
		return domainsession.TokenSet{}, err
	}

	logger := h.logger.With(slog.String("provider", string(session.Identity().Provider)))

	refreshed, err := provider.RefreshTokens(ctx, session.Tokens().RefreshToken)
	if err != nil {
		if cause, ok := autherr.CauseOf(err); ok {
			logger.WarnContext(ctx, "provider rejected refresh token", slog.String("provider_error", cause.Code().String()))

			return domainsession.TokenSet{}, must(autherr.RefreshFailed(cause))
		}

		logger.ErrorContext(ctx, "refresh token request failed", slog.String("error", err.Error()))

		return domainsession.TokenSet{}, fmt.Errorf("%w: %v", ErrTokenEndpointUnavailable, err)
	}

	if err := session.SetTokens(refreshed); err != nil {
		logger.ErrorContext(ctx, "refresh response rejected", slog.String("error", err.Error()))

		return domainsession.TokenSet{}, fmt.Errorf("%w: %v", ErrTokenEndpointUnavailable, err)
	}

	if !h.sessionCfg.PersistIDToken {
		session.DropIDToken()
	}

	if err := h.sessionRepo.UpdateSession(ctx, session); err != nil {
		if errors.Is(err, domainsession.ErrSessionNotFound) {
			logger.InfoContext(ctx, "session ended while refreshing tokens")

			return domainsession.TokenSet{}, autherr.MissingSession()
		}

		logger.ErrorContext(ctx, "failed to persist refreshed tokens", slog.String("error", err.Error()))

		return domainsession.TokenSet{}, err
	}

	logger.DebugContext(ctx, "access token refreshed")

	return session.Tokens(), nil
}

// GetAccessTokenForConnection returns an access token for an upstream
// connection, exchanging the session refresh token when nothing usable is
// cached.
func (h *accessTokenHandler) GetAccessTokenForConnection(
	ctx context.Context,
	req *GetAccessTokenForConnectionRequest,
) (*AccessTokenResult, error) {
	if req == nil {
		return nil, ErrRequestNil
	}

	if req.Connection == "" {
		return nil, ErrConnectionRequired
	}

	session, ok, err := h.loadSession(ctx, req.SessionToken)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, autherr.ConnectionMissingSession()
	}

	if cached, ok := session.ConnectionTokens(req.Connection); ok && !cached.Expired(h.clock.Now()) {
		return connectionTokenResult(cached), nil
	}

	refreshToken := session.Tokens().RefreshToken
	if refreshToken == "" {
		h.logger.InfoContext(ctx, "connection token requested but session has no refresh token",
			slog.String("connection", req.Connection),
		)

		return nil, autherr.ConnectionMissingRefreshToken()
	}

	provider, err := h.providerFor(session)
	if err != nil {
		return nil, err
	}

	logger := h.logger.With(
		slog.String("provider", string(session.Identity().Provider)),
		slog.String("connection", req.Connection),
	)

	exchanged, err := provider.ExchangeForConnection(ctx, refreshToken, ConnectionRequest{
		Connection: req.Connection,
		LoginHint:  req.LoginHint,
	})
	if err != nil {
		if cause, ok := autherr.CauseOf(err); ok {
			logger.WarnContext(ctx, "provider rejected connection token exchange", slog.String("provider_error", cause.Code().String()))

			return nil, must(autherr.ConnectionExchangeFailed(cause))
		}

		logger.ErrorContext(ctx, "connection token exchange failed", slog.String("error", err.Error()))

		return nil, fmt.Errorf("%w: %v", ErrTokenEndpointUnavailable, err)
	}

	exchanged.Connection = req.Connection

	if err := session.SetConnectionTokens(exchanged); err != nil {
		logger.ErrorContext(ctx, "connection token response rejected", slog.String("error", err.Error()))

		return nil, fmt.Errorf("%w: %v", ErrTokenEndpointUnavailable, err)
	}

	if err := h.sessionRepo.UpdateSession(ctx, session); err != nil {
		if errors.Is(err, domainsession.ErrSessionNotFound) {
			logger.InfoContext(ctx, "session ended while exchanging connection token")

			return nil, autherr.ConnectionMissingSession()
		}

		logger.ErrorContext(ctx, "failed to persist connection tokens", slog.String("error", err.Error()))

		return nil, err
	}

	return connectionTokenResult(exchanged), nil
}

// loadSession resolves the session behind a session token. ok is false
// when the caller has no usable session.
func (h *accessTokenHandler) loadSession(ctx context.Context, sessionToken string) (*domainsession.Session, bool, error) {
	session, err := h.sessions.Resolve(ctx, sessionToken)
	if err != nil {
		if appsession.IsNoSession(err) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return session, true, nil
}

func (h *accessTokenHandler) providerFor(session *domainsession.Session) (TokenProvider, error) {
	providerID := session.Identity().Provider

	provider, ok := h.providers[providerID]
	if !ok {
		h.logger.Error("session references unconfigured provider", slog.String("provider", string(providerID)))

		return nil, fmt.Errorf("%w: %s", ErrProviderUnsupported, providerID)
	}

	return provider, nil
}

func accessTokenResult(tokens domainsession.TokenSet) *AccessTokenResult {
	return &AccessTokenResult{
		AccessToken: tokens.AccessToken,
		Scope:       tokens.Scope,
		ExpiresAt:   tokens.ExpiresAt,
	}
}

func connectionTokenResult(tokens domainsession.ConnectionTokenSet) *AccessTokenResult {
	return &AccessTokenResult{
		AccessToken: tokens.AccessToken,
		Scope:       tokens.Scope,
		ExpiresAt:   tokens.ExpiresAt,
	}
}

// must unwraps autherr constructors whose contract the caller already
// satisfied (a non-nil cause), keeping the error typed.
func must[T error](value T, err error) error {
	if err != nil {
		return err
	}

	return value
}
