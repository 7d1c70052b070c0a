package logout

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	appsession "github.com/KasumiMercury/primind-auth/internal/auth/app/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	domainsession "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
)

// LogoutClaims is what a verified back-channel logout token identifies.
type LogoutClaims struct {
	Subject   string
	SessionID string
}

type LogoutProvider interface {
	// EndSessionURL returns the provider logout redirect. It fails when the
	// provider has no end session endpoint.
	EndSessionURL(idTokenHint string) (string, error)
	VerifyLogoutToken(ctx context.Context, rawToken string) (*LogoutClaims, error)
}

type SessionResolver interface {
	Resolve(ctx context.Context, sessionToken string) (*domainsession.Session, error)
}

type LogoutRequest struct {
	SessionToken string
}

type LogoutResponse struct {
	// EndSessionURL is empty when there was no session or the provider does
	// not support RP-initiated logout.
	EndSessionURL string
}

type BackchannelLogoutResult struct {
	Provider        domainoidc.ProviderID
	DeletedSessions int
}

type LogoutUseCase interface {
	Logout(ctx context.Context, req *LogoutRequest) (*LogoutResponse, error)
	HandleBackchannelLogout(ctx context.Context, logoutToken string) (*BackchannelLogoutResult, error)
}

type logoutHandler struct {
	providers   map[domainoidc.ProviderID]LogoutProvider
	sessions    SessionResolver
	sessionRepo domainsession.SessionRepository
	logger      *slog.Logger
}

func NewLogoutHandler(
	providers map[domainoidc.ProviderID]LogoutProvider,
	sessions SessionResolver,
	sessionRepo domainsession.SessionRepository,
) LogoutUseCase {
	return &logoutHandler{
		providers:   providers,
		sessions:    sessions,
		sessionRepo: sessionRepo,
		logger:      slog.Default().WithGroup("auth").WithGroup("logout"),
	}
}

// Logout ends the local session. A request without a usable session still
// succeeds so the caller can clear its cookie.
func (h *logoutHandler) Logout(ctx context.Context, req *LogoutRequest) (*LogoutResponse, error) {
	if req == nil {
		return nil, ErrRequestNil
	}

	session, err := h.sessions.Resolve(ctx, req.SessionToken)
	if err != nil {
		if appsession.IsNoSession(err) {
			h.logger.InfoContext(ctx, "logout without an active session", slog.String("error", err.Error()))

			return &LogoutResponse{}, nil
		}

		return nil, err
	}

	if err := h.sessionRepo.DeleteSession(ctx, session.ID()); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete session", slog.String("error", err.Error()))

		return nil, err
	}

	providerID := session.Identity().Provider

	provider, ok := h.providers[providerID]
	if !ok {
		h.logger.WarnContext(ctx, "session provider is not configured", slog.String("provider", string(providerID)))

		return &LogoutResponse{}, nil
	}

	endSessionURL, err := provider.EndSessionURL(session.Tokens().IDToken)
	if err != nil {
		h.logger.InfoContext(ctx, "provider logout unavailable",
			slog.String("provider", string(providerID)),
			slog.String("error", err.Error()),
		)

		return &LogoutResponse{}, nil
	}

	return &LogoutResponse{EndSessionURL: endSessionURL}, nil
}

// HandleBackchannelLogout verifies a logout token against every configured
// provider and deletes the sessions it names. Every failure is reported as a
// BackchannelLogoutError; details are logged only.
func (h *logoutHandler) HandleBackchannelLogout(ctx context.Context, logoutToken string) (*BackchannelLogoutResult, error) {
	if logoutToken == "" {
		h.logger.InfoContext(ctx, "backchannel logout without a logout token")

		return nil, autherr.NewBackchannelLogoutError()
	}

	providerID, claims, err := h.verify(ctx, logoutToken)
	if err != nil {
		h.logger.WarnContext(ctx, "logout token rejected", slog.String("error", err.Error()))

		return nil, autherr.NewBackchannelLogoutError()
	}

	target := domainsession.LogoutTarget{
		Provider:          providerID,
		Subject:           claims.Subject,
		ProviderSessionID: claims.SessionID,
	}

	deleted, err := h.sessionRepo.DeleteSessionsByLogoutTarget(ctx, target)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete sessions for logout token",
			slog.String("provider", string(providerID)),
			slog.String("error", err.Error()),
		)

		return nil, autherr.NewBackchannelLogoutError()
	}

	h.logger.InfoContext(ctx, "backchannel logout processed",
		slog.String("provider", string(providerID)),
		slog.Int("deleted_sessions", deleted),
	)

	return &BackchannelLogoutResult{
		Provider:        providerID,
		DeletedSessions: deleted,
	}, nil
}

// verify tries providers in a stable order; the first that accepts the
// token identifies the issuer.
func (h *logoutHandler) verify(ctx context.Context, logoutToken string) (domainoidc.ProviderID, *LogoutClaims, error) {
	ids := make([]domainoidc.ProviderID, 0, len(h.providers))
	for id := range h.providers {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	errs := make([]error, 0, len(ids))

	for _, id := range ids {
		claims, err := h.providers[id].VerifyLogoutToken(ctx, logoutToken)
		if err == nil {
			return id, claims, nil
		}

		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return "", nil, errors.New("no provider configured")
	}

	return "", nil, errors.Join(errs...)
}
