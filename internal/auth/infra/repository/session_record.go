package repository

import (
	"time"

	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	domainsession "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	domainuser "github.com/KasumiMercury/primind-auth/internal/auth/domain/user"
)

type tokenSetRecord struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	IDToken      string    `json:"id_token,omitempty"`
	Scope        string    `json:"scope,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitzero"`
}

type connectionTokenRecord struct {
	AccessToken string    `json:"access_token"`
	Scope       string    `json:"scope,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitzero"`
}

type sessionRecord struct {
	ID                string                           `json:"id"`
	UserID            string                           `json:"user_id"`
	Provider          string                           `json:"provider,omitempty"`
	Subject           string                           `json:"subject,omitempty"`
	ProviderSessionID string                           `json:"sid,omitempty"`
	Tokens            tokenSetRecord                   `json:"tokens"`
	Connections       map[string]connectionTokenRecord `json:"connections,omitempty"`
	CreatedAt         time.Time                        `json:"created_at"`
	ExpiresAt         time.Time                        `json:"expires_at"`
}

func newSessionRecord(session *domainsession.Session) sessionRecord {
	identity := session.Identity()
	tokens := session.Tokens()

	record := sessionRecord{
		ID:                session.ID().String(),
		UserID:            session.UserID().String(),
		Provider:          string(identity.Provider),
		Subject:           identity.Subject,
		ProviderSessionID: identity.ProviderSessionID,
		Tokens: tokenSetRecord{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			IDToken:      tokens.IDToken,
			Scope:        tokens.Scope,
			ExpiresAt:    tokens.ExpiresAt,
		},
		CreatedAt: session.CreatedAt(),
		ExpiresAt: session.ExpiresAt(),
	}

	connections := session.AllConnectionTokens()
	if len(connections) > 0 {
		record.Connections = make(map[string]connectionTokenRecord, len(connections))
		for name, set := range connections {
			record.Connections[name] = connectionTokenRecord{
				AccessToken: set.AccessToken,
				Scope:       set.Scope,
				ExpiresAt:   set.ExpiresAt,
			}
		}
	}

	return record
}

func (r sessionRecord) toDomain() (*domainsession.Session, error) {
	sessionID, err := domainsession.ParseID(r.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domainuser.NewIDFromString(r.UserID)
	if err != nil {
		return nil, err
	}

	session, err := domainsession.NewSessionWithID(sessionID, userID, r.CreatedAt, r.ExpiresAt)
	if err != nil {
		return nil, err
	}

	session.SetIdentity(domainsession.Identity{
		Provider:          domainoidc.ProviderID(r.Provider),
		Subject:           r.Subject,
		ProviderSessionID: r.ProviderSessionID,
	})

	if r.Tokens.AccessToken != "" {
		if err := session.SetTokens(domainsession.TokenSet{
			AccessToken:  r.Tokens.AccessToken,
			RefreshToken: r.Tokens.RefreshToken,
			IDToken:      r.Tokens.IDToken,
			Scope:        r.Tokens.Scope,
			ExpiresAt:    r.Tokens.ExpiresAt,
		}); err != nil {
			return nil, err
		}
	}

	for name, set := range r.Connections {
		if err := session.SetConnectionTokens(domainsession.ConnectionTokenSet{
			Connection:  name,
			AccessToken: set.AccessToken,
			Scope:       set.Scope,
			ExpiresAt:   set.ExpiresAt,
		}); err != nil {
			return nil, err
		}
	}

	return session, nil
}

// matchesLogoutTarget reports whether a session belongs to a backchannel logout target.
func matchesLogoutTarget(identity domainsession.Identity, target domainsession.LogoutTarget) bool {
	if identity.Provider != target.Provider {
		return false
	}

	if target.ProviderSessionID != "" {
		return identity.ProviderSessionID == target.ProviderSessionID
	}

	return identity.Subject == target.Subject
}
