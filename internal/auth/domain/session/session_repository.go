package domain

import (
	"context"

	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
)

//go:generate mockgen -source=session_repository.go -destination=mock_session_repository.go -package=domain

// LogoutTarget selects the sessions ended by a backchannel logout. When
// ProviderSessionID is set only that provider session is matched.
type LogoutTarget struct {
	Provider          domainoidc.ProviderID
	Subject           string
	ProviderSessionID string
}

func (t LogoutTarget) Validate() error {
	if t.Provider == "" {
		return ErrLogoutTargetProvider
	}

	if t.Subject == "" && t.ProviderSessionID == "" {
		return ErrLogoutTargetEmpty
	}

	return nil
}

type SessionRepository interface {
	SaveSession(ctx context.Context, session *Session) error
	// UpdateSession overwrites a stored session and returns
	// ErrSessionNotFound when it has been deleted in the meantime.
	UpdateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, sessionID ID) (*Session, error)
	DeleteSession(ctx context.Context, sessionID ID) error
	DeleteSessionsByLogoutTarget(ctx context.Context, target LogoutTarget) (int, error)
}
