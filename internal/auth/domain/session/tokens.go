package domain

import "time"

// ExpiryLeeway treats tokens as expired slightly before their real expiry so
// they are not rejected in flight.
const ExpiryLeeway = 30 * time.Second

// TokenSet is what the token endpoint issued for the session.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Scope        string
	ExpiresAt    time.Time
}

// Expired reports whether the access token must be refreshed before use. A
// zero ExpiresAt means the provider sent no expiry.
func (t TokenSet) Expired(now time.Time) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}

	return !now.Add(ExpiryLeeway).Before(t.ExpiresAt)
}

// ConnectionTokenSet is an access token obtained for a connection through
// token exchange.
type ConnectionTokenSet struct {
	Connection  string
	AccessToken string
	Scope       string
	ExpiresAt   time.Time
}

func (t ConnectionTokenSet) Expired(now time.Time) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}

	return !now.Add(ExpiryLeeway).Before(t.ExpiresAt)
}
