package repository

import (
	"context"
	"sync"

	domainsession "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
)

// inMemorySessionRepository keeps serialized records so callers never share
// a *Session with the store.
type inMemorySessionRepository struct {
	mu          sync.Mutex
	bySessionID map[domainsession.ID]sessionRecord
	clock       clock.Clock
}

func NewInMemorySessionRepository() domainsession.SessionRepository {
	return NewInMemorySessionRepositoryWithClock(&clock.RealClock{})
}

func NewInMemorySessionRepositoryWithClock(clk clock.Clock) domainsession.SessionRepository {
	return &inMemorySessionRepository{
		bySessionID: make(map[domainsession.ID]sessionRecord),
		clock:       clk,
	}
}

func (r *inMemorySessionRepository) SaveSession(_ context.Context, session *domainsession.Session) error {
	if session == nil {
		return ErrSessionRequired
	}

	if session.IsExpired(r.clock.Now()) {
		return ErrSessionAlreadyExpired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bySessionID[session.ID()] = newSessionRecord(session)

	return nil
}

func (r *inMemorySessionRepository) UpdateSession(_ context.Context, session *domainsession.Session) error {
	if session == nil {
		return ErrSessionRequired
	}

	if session.IsExpired(r.clock.Now()) {
		return ErrSessionAlreadyExpired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bySessionID[session.ID()]; !ok {
		return domainsession.ErrSessionNotFound
	}

	r.bySessionID[session.ID()] = newSessionRecord(session)

	return nil
}

func (r *inMemorySessionRepository) GetSession(_ context.Context, sessionID domainsession.ID) (*domainsession.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.bySessionID[sessionID]
	if !ok {
		return nil, domainsession.ErrSessionNotFound
	}

	if !record.ExpiresAt.After(r.clock.Now()) {
		delete(r.bySessionID, sessionID)

		return nil, domainsession.ErrSessionNotFound
	}

	return record.toDomain()
}

func (r *inMemorySessionRepository) DeleteSession(_ context.Context, sessionID domainsession.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bySessionID, sessionID)

	return nil
}

func (r *inMemorySessionRepository) DeleteSessionsByLogoutTarget(_ context.Context, target domainsession.LogoutTarget) (int, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0

	for id, record := range r.bySessionID {
		session, err := record.toDomain()
		if err != nil {
			continue
		}

		if matchesLogoutTarget(session.Identity(), target) {
			delete(r.bySessionID, id)
			deleted++
		}
	}

	return deleted, nil
}
