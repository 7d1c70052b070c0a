package oidc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sessionCfg "github.com/KasumiMercury/primind-auth/internal/auth/config/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/oidcidentity"
	domain "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/user"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
)

type OIDCLoginUseCase interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
}

type SessionTokenGenerator interface {
	Generate(session *domain.Session) (string, error)
}

// UserWithOIDCIdentityRepository stores a new user and its first identity
// atomically.
type UserWithOIDCIdentityRepository interface {
	user.UserRepository
	SaveUserWithOIDCIdentity(ctx context.Context, u *user.User, identity *oidcidentity.OIDCIdentity) error
}

type IDToken struct {
	Subject   string
	Name      string
	Nonce     string
	SessionID string
}

type TokenResult struct {
	IDToken IDToken
	Tokens  domain.TokenSet
}

type OIDCProviderWithLogin interface {
	OIDCProvider
	ExchangeToken(ctx context.Context, code, codeVerifier, nonce string) (*TokenResult, error)
}

// LoginRequest carries the redirect callback query. Provider is optional;
// when set it must match the provider the state was issued for.
type LoginRequest struct {
	Provider         domainoidc.ProviderID
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

type LoginResult struct {
	SessionToken string
	ExpiresAt    time.Time
	ReturnTo     string
}

type loginHandler struct {
	providers        map[domainoidc.ProviderID]OIDCProviderWithLogin
	paramsRepo       domainoidc.ParamsRepository
	sessionRepo      domain.SessionRepository
	identityRepo     oidcidentity.OIDCIdentityRepository
	userIdentityRepo UserWithOIDCIdentityRepository
	jwtGenerator     SessionTokenGenerator
	sessionCfg       *sessionCfg.Config
	clock            clock.Clock
	logger           *slog.Logger
}

func NewLoginHandler(
	providers map[domainoidc.ProviderID]OIDCProviderWithLogin,
	paramsRepo domainoidc.ParamsRepository,
	sessionRepo domain.SessionRepository,
	identityRepo oidcidentity.OIDCIdentityRepository,
	userIdentityRepo UserWithOIDCIdentityRepository,
	jwtGenerator SessionTokenGenerator,
	sessionCfg *sessionCfg.Config,
) OIDCLoginUseCase {
	return NewLoginHandlerWithClock(
		providers,
		paramsRepo,
		sessionRepo,
		identityRepo,
		userIdentityRepo,
		jwtGenerator,
		sessionCfg,
		&clock.RealClock{},
	)
}

func NewLoginHandlerWithClock(
	providers map[domainoidc.ProviderID]OIDCProviderWithLogin,
	paramsRepo domainoidc.ParamsRepository,
	sessionRepo domain.SessionRepository,
	identityRepo oidcidentity.OIDCIdentityRepository,
	userIdentityRepo UserWithOIDCIdentityRepository,
	jwtGenerator SessionTokenGenerator,
	sessionCfg *sessionCfg.Config,
	clk clock.Clock,
) OIDCLoginUseCase {
	return &loginHandler{
		providers:        providers,
		paramsRepo:       paramsRepo,
		sessionRepo:      sessionRepo,
		identityRepo:     identityRepo,
		userIdentityRepo: userIdentityRepo,
		jwtGenerator:     jwtGenerator,
		sessionCfg:       sessionCfg,
		clock:            clk,
		logger:           slog.Default().WithGroup("auth").WithGroup("oidc").WithGroup("login"),
	}
}

// Login completes the authorization code flow for a redirect callback.
// Flow failures are returned as autherr values; storage failures as plain
// errors.
func (h *loginHandler) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	if req == nil {
		return nil, ErrRequestNil
	}

	if req.State == "" {
		h.logger.WarnContext(ctx, "callback without state parameter")

		return nil, autherr.NewMissingStateError()
	}

	storedParams, err := h.consumeParams(ctx, req)
	if err != nil {
		return nil, err
	}

	provider := storedParams.Provider()
	logger := h.logger.With(slog.String("provider", string(provider)))

	if strings.TrimSpace(req.Error) != "" {
		return nil, h.authorizationError(ctx, logger, req)
	}

	rpProvider, ok := h.providers[provider]
	if !ok {
		logger.WarnContext(ctx, "callback for unsupported provider")

		return nil, ErrProviderUnsupported
	}

	if req.Code == "" {
		logger.WarnContext(ctx, "callback without authorization code")

		return nil, autherr.NewAuthorizationCodeGrantRequestError(
			autherr.WithMessage("The authorization code is missing."),
		)
	}

	tokenResult, err := rpProvider.ExchangeToken(ctx, req.Code, storedParams.CodeVerifier(), storedParams.Nonce())
	if err != nil {
		if cause, ok := autherr.CauseOf(err); ok {
			logger.WarnContext(ctx, "token endpoint rejected authorization code", slog.String("provider_error", cause.Code().String()))

			grantErr, buildErr := autherr.NewAuthorizationCodeGrantError(cause)
			if buildErr != nil {
				return nil, buildErr
			}

			return nil, grantErr
		}

		logger.WarnContext(ctx, "authorization code grant request failed", slog.String("error", err.Error()))

		return nil, autherr.NewAuthorizationCodeGrantRequestError()
	}

	if tokenResult.IDToken.Nonce != storedParams.Nonce() {
		logger.WarnContext(ctx, "nonce validation failed")

		return nil, autherr.NewAuthorizationCodeGrantRequestError(
			autherr.WithMessage("The ID token nonce does not match the authorization request."),
		)
	}

	userID, err := h.resolveUser(ctx, provider, tokenResult.IDToken.Subject)
	if err != nil {
		logger.ErrorContext(ctx, "failed to resolve user", slog.String("error", err.Error()))

		return nil, err
	}

	now := h.clock.Now()

	session, err := domain.NewSession(userID, now, now.Add(h.sessionCfg.Duration))
	if err != nil {
		logger.ErrorContext(ctx, "failed to create session", slog.String("error", err.Error()))

		return nil, err
	}

	session.SetIdentity(domain.Identity{
		Provider:          provider,
		Subject:           tokenResult.IDToken.Subject,
		ProviderSessionID: tokenResult.IDToken.SessionID,
	})

	if err := session.SetTokens(tokenResult.Tokens); err != nil {
		logger.WarnContext(ctx, "token response rejected", slog.String("error", err.Error()))

		return nil, autherr.NewAuthorizationCodeGrantRequestError()
	}

	if !h.sessionCfg.PersistIDToken {
		session.DropIDToken()
	}

	if err := h.sessionRepo.SaveSession(ctx, session); err != nil {
		logger.ErrorContext(ctx, "failed to persist session", slog.String("error", err.Error()))

		return nil, err
	}

	sessionToken, err := h.jwtGenerator.Generate(session)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate session token", slog.String("error", err.Error()))

		return nil, err
	}

	logger.InfoContext(ctx, "oidc login successful")

	return &LoginResult{
		SessionToken: sessionToken,
		ExpiresAt:    session.ExpiresAt(),
		ReturnTo:     storedParams.ReturnTo(),
	}, nil
}

// consumeParams loads the transaction for the callback state and deletes
// it, so a state value is accepted at most once.
func (h *loginHandler) consumeParams(ctx context.Context, req *LoginRequest) (*domainoidc.Params, error) {
	storedParams, err := h.paramsRepo.GetParamsByState(ctx, req.State)
	if err != nil {
		if errors.Is(err, domainoidc.ErrParamsNotFound) {
			h.logger.WarnContext(ctx, "state not found during login")

			return nil, autherr.NewInvalidStateError()
		}

		h.logger.ErrorContext(ctx, "failed to load stored params", slog.String("error", err.Error()))

		return nil, err
	}

	if err := h.paramsRepo.DeleteParams(ctx, req.State); err != nil {
		h.logger.ErrorContext(ctx, "failed to consume stored params", slog.String("error", err.Error()))

		return nil, err
	}

	if storedParams.IsExpired(h.clock.Now()) {
		h.logger.WarnContext(ctx, "login attempt with expired params", slog.String("provider", string(storedParams.Provider())))

		return nil, autherr.NewInvalidStateError()
	}

	if req.Provider != "" && storedParams.Provider() != req.Provider {
		h.logger.WarnContext(ctx, "login attempted with mismatched provider",
			slog.String("provider", string(req.Provider)),
			slog.String("expected_provider", string(storedParams.Provider())),
		)

		return nil, autherr.NewInvalidStateError()
	}

	return storedParams, nil
}

func (h *loginHandler) authorizationError(ctx context.Context, logger *slog.Logger, req *LoginRequest) error {
	cause, err := autherr.NewProviderError(req.Error, req.ErrorDescription)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "provider returned an authorization error", slog.String("provider_error", cause.Code().String()))

	authErr, err := autherr.NewAuthorizationError(cause)
	if err != nil {
		return err
	}

	return authErr
}

// resolveUser finds the user linked to provider+subject, creating both on
// first login.
func (h *loginHandler) resolveUser(ctx context.Context, provider domainoidc.ProviderID, subject string) (user.ID, error) {
	identity, err := h.identityRepo.GetOIDCIdentityByProviderSubject(ctx, provider, subject)
	if err == nil {
		if _, err := h.userIdentityRepo.GetUserByID(ctx, identity.UserID()); err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return user.ID{}, fmt.Errorf("%w: %s", ErrLinkedUserMissing, identity.UserID())
			}

			return user.ID{}, err
		}

		return identity.UserID(), nil
	}

	if !errors.Is(err, oidcidentity.ErrOIDCIdentityNotFound) {
		return user.ID{}, err
	}

	newUser, err := user.CreateUser()
	if err != nil {
		return user.ID{}, err
	}

	newIdentity, err := oidcidentity.NewOIDCIdentity(newUser.ID(), provider, subject)
	if err != nil {
		return user.ID{}, err
	}

	if err := h.userIdentityRepo.SaveUserWithOIDCIdentity(ctx, newUser, newIdentity); err != nil {
		if !errors.Is(err, oidcidentity.ErrOIDCIdentityConflict) {
			return user.ID{}, err
		}

		// Lost a race with a concurrent first login; use the winner's user.
		existing, getErr := h.identityRepo.GetOIDCIdentityByProviderSubject(ctx, provider, subject)
		if getErr != nil {
			return user.ID{}, getErr
		}

		return existing.UserID(), nil
	}

	return newUser.ID(), nil
}
