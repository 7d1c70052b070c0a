package domain

import (
	"fmt"
	"maps"
	"time"

	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/user"
	"github.com/google/uuid"
)

type ID uuid.UUID

func NewID() (ID, error) {
	v7, err := uuid.NewV7()
	if err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrSessionIDGeneration, err)
	}

	return ID(v7), nil
}

func ParseID(id string) (ID, error) {
	if id == "" {
		return ID{}, ErrSessionIDEmpty
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrSessionIDInvalidFormat, err)
	}

	candidate := ID(parsed)

	return candidate, candidate.validate()
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

func (id ID) Validate() error {
	return id.validate()
}

func (id ID) validate() error {
	if uuid.UUID(id) == uuid.Nil {
		return ErrSessionIDEmpty
	}

	if uuid.UUID(id).Version() != 7 {
		return ErrSessionIDInvalidV7
	}

	return nil
}

// Identity is who the provider authenticated: the issuer-scoped subject and
// the provider session id (sid) used by backchannel logout.
type Identity struct {
	Provider          domainoidc.ProviderID
	Subject           string
	ProviderSessionID string
}

type Session struct {
	id               ID
	userID           user.ID
	identity         Identity
	tokens           TokenSet
	connectionTokens map[string]ConnectionTokenSet
	createdAt        time.Time
	expiresAt        time.Time
}

func NewSession(userID user.ID, createdAt, expiresAt time.Time) (*Session, error) {
	id, err := NewID()
	if err != nil {
		return nil, err
	}

	return newSession(id, userID, createdAt, expiresAt)
}

func NewSessionWithID(id ID, userID user.ID, createdAt, expiresAt time.Time) (*Session, error) {
	return newSession(id, userID, createdAt, expiresAt)
}

func newSession(id ID, userID user.ID, createdAt, expiresAt time.Time) (*Session, error) {
	if err := id.validate(); err != nil {
		return nil, err
	}

	if userID == (user.ID{}) {
		return nil, ErrUserIDEmpty
	}

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if expiresAt.IsZero() {
		return nil, ErrExpiresAtMissing
	}

	if !expiresAt.After(createdAt) {
		return nil, ErrExpiresBeforeStart
	}

	return &Session{
		id:               id,
		userID:           userID,
		connectionTokens: make(map[string]ConnectionTokenSet),
		createdAt:        createdAt,
		expiresAt:        expiresAt,
	}, nil
}

func (s *Session) ID() ID {
	return s.id
}

func (s *Session) UserID() user.ID {
	return s.userID
}

func (s *Session) Identity() Identity {
	return s.identity
}

func (s *Session) Tokens() TokenSet {
	return s.tokens
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.expiresAt.After(now)
}

func (s *Session) SetIdentity(identity Identity) {
	s.identity = identity
}

// SetTokens replaces the token set. A set without a refresh token or ID
// token keeps the previous one, as providers may omit both on refresh.
func (s *Session) SetTokens(tokens TokenSet) error {
	if tokens.AccessToken == "" {
		return ErrAccessTokenEmpty
	}

	if tokens.RefreshToken == "" {
		tokens.RefreshToken = s.tokens.RefreshToken
	}

	if tokens.IDToken == "" {
		tokens.IDToken = s.tokens.IDToken
	}

	s.tokens = tokens

	return nil
}

// DropIDToken removes the ID token, for deployments that do not keep it.
func (s *Session) DropIDToken() {
	s.tokens.IDToken = ""
}

func (s *Session) ConnectionTokens(connection string) (ConnectionTokenSet, bool) {
	tokens, ok := s.connectionTokens[connection]

	return tokens, ok
}

func (s *Session) AllConnectionTokens() map[string]ConnectionTokenSet {
	return maps.Clone(s.connectionTokens)
}

func (s *Session) SetConnectionTokens(tokens ConnectionTokenSet) error {
	if tokens.Connection == "" {
		return ErrConnectionEmpty
	}

	if tokens.AccessToken == "" {
		return ErrAccessTokenEmpty
	}

	s.connectionTokens[tokens.Connection] = tokens

	return nil
}
