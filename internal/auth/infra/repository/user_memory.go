package repository

import (
	"context"
	"sync"

	appoidc "github.com/KasumiMercury/primind-auth/internal/auth/app/oidc"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	domainidentity "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidcidentity"
	domainuser "github.com/KasumiMercury/primind-auth/internal/auth/domain/user"
)

// InMemoryUserStore backs users and their identities when no database is
// configured. One store serves every user-facing repository interface so the
// user+identity save stays atomic.
type InMemoryUserStore struct {
	mu         sync.Mutex
	users      map[domainuser.ID]struct{}
	identities map[domainidentity.Key]domainuser.ID
}

var (
	_ domainidentity.OIDCIdentityRepository  = (*InMemoryUserStore)(nil)
	_ appoidc.UserWithOIDCIdentityRepository = (*InMemoryUserStore)(nil)
)

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:      make(map[domainuser.ID]struct{}),
		identities: make(map[domainidentity.Key]domainuser.ID),
	}
}

func (s *InMemoryUserStore) GetUserByID(_ context.Context, id domainuser.ID) (*domainuser.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return nil, domainuser.ErrUserNotFound
	}

	return domainuser.NewUser(id), nil
}

func (s *InMemoryUserStore) SaveOIDCIdentity(_ context.Context, identity *domainidentity.OIDCIdentity) error {
	if identity == nil {
		return ErrIdentityRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.identities[identity.Key()]; !exists {
		s.identities[identity.Key()] = identity.UserID()
	}

	return nil
}

func (s *InMemoryUserStore) GetOIDCIdentityByProviderSubject(
	_ context.Context,
	provider domainoidc.ProviderID,
	subject string,
) (*domainidentity.OIDCIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.identities[domainidentity.Key{Provider: provider, Subject: subject}]
	if !ok {
		return nil, domainidentity.ErrOIDCIdentityNotFound
	}

	return domainidentity.NewOIDCIdentity(userID, provider, subject)
}

func (s *InMemoryUserStore) SaveUserWithOIDCIdentity(
	_ context.Context,
	u *domainuser.User,
	identity *domainidentity.OIDCIdentity,
) error {
	if u == nil {
		return ErrUserRequired
	}

	if identity == nil {
		return ErrIdentityRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, exists := s.identities[identity.Key()]; exists {
		if owner != u.ID() {
			return domainidentity.ErrOIDCIdentityConflict
		}

		return nil
	}

	s.users[u.ID()] = struct{}{}
	s.identities[identity.Key()] = u.ID()

	return nil
}
