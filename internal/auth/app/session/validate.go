package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainsession "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/user"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
)

type TokenVerifier interface {
	Verify(token string) error
	ExtractSessionID(token string) (string, error)
}

type ValidateSessionRequest struct {
	SessionToken string
}

type ValidateSessionResult struct {
	SessionID domainsession.ID
	UserID    user.ID
}

type ValidateSessionUseCase interface {
	Validate(ctx context.Context, req *ValidateSessionRequest) (*ValidateSessionResult, error)
	// Resolve returns the live session behind a session token.
	Resolve(ctx context.Context, sessionToken string) (*domainsession.Session, error)
}

type validateSessionHandler struct {
	sessionRepo   domainsession.SessionRepository
	tokenVerifier TokenVerifier
	clock         clock.Clock
	logger        *slog.Logger
}

func NewValidateSessionHandler(
	sessionRepo domainsession.SessionRepository,
	tokenVerifier TokenVerifier,
) ValidateSessionUseCase {
	return NewValidateSessionHandlerWithClock(sessionRepo, tokenVerifier, &clock.RealClock{})
}

func NewValidateSessionHandlerWithClock(
	sessionRepo domainsession.SessionRepository,
	tokenVerifier TokenVerifier,
	clk clock.Clock,
) ValidateSessionUseCase {
	return &validateSessionHandler{
		sessionRepo:   sessionRepo,
		tokenVerifier: tokenVerifier,
		clock:         clk,
		logger:        slog.Default().WithGroup("auth").WithGroup("session").WithGroup("validate"),
	}
}

func (h *validateSessionHandler) Validate(ctx context.Context, req *ValidateSessionRequest) (*ValidateSessionResult, error) {
	if req == nil {
		return nil, ErrRequestNil
	}

	session, err := h.Resolve(ctx, req.SessionToken)
	if err != nil {
		return nil, err
	}

	return &ValidateSessionResult{
		SessionID: session.ID(),
		UserID:    session.UserID(),
	}, nil
}

func (h *validateSessionHandler) Resolve(ctx context.Context, sessionToken string) (*domainsession.Session, error) {
	if sessionToken == "" {
		return nil, ErrSessionTokenRequired
	}

	sessionID, err := h.sessionIDFromToken(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	session, err := h.sessionRepo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainsession.ErrSessionNotFound) {
			h.logger.InfoContext(ctx, "session not found for validated token")

			return nil, ErrSessionNotFound
		}

		h.logger.ErrorContext(ctx, "failed to load session", slog.String("error", err.Error()))

		return nil, fmt.Errorf("load session: %w", err)
	}

	if session.IsExpired(h.clock.Now()) {
		h.logger.InfoContext(ctx, "session has expired")

		return nil, ErrSessionExpired
	}

	return session, nil
}

func (h *validateSessionHandler) sessionIDFromToken(ctx context.Context, sessionToken string) (domainsession.ID, error) {
	if err := h.tokenVerifier.Verify(sessionToken); err != nil {
		h.logger.InfoContext(ctx, "session token verification failed", slog.String("error", err.Error()))

		return domainsession.ID{}, fmt.Errorf("%w: %v", ErrSessionTokenInvalid, err)
	}

	rawSessionID, err := h.tokenVerifier.ExtractSessionID(sessionToken)
	if err != nil {
		h.logger.InfoContext(ctx, "session id extraction failed", slog.String("error", err.Error()))

		return domainsession.ID{}, fmt.Errorf("%w: %v", ErrSessionTokenInvalid, err)
	}

	sessionID, err := domainsession.ParseID(rawSessionID)
	if err != nil {
		h.logger.InfoContext(ctx, "session id in token is invalid", slog.String("error", err.Error()))

		return domainsession.ID{}, fmt.Errorf("%w: %v", ErrSessionTokenInvalid, err)
	}

	return sessionID, nil
}

// IsNoSession reports whether err means the caller has no usable session,
// as opposed to a store failure.
func IsNoSession(err error) bool {
	return errors.Is(err, ErrSessionTokenRequired) ||
		errors.Is(err, ErrSessionTokenInvalid) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrSessionExpired)
}
