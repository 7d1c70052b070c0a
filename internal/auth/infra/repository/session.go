package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	domainsession "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *redis.Client
	clock  clock.Clock
}

func NewSessionRepository(client *redis.Client) domainsession.SessionRepository {
	return NewSessionRepositoryWithClock(client, &clock.RealClock{})
}

func NewSessionRepositoryWithClock(client *redis.Client, clk clock.Clock) domainsession.SessionRepository {
	return &sessionRepository{
		client: client,
		clock:  clk,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session *domainsession.Session) error {
	if session == nil {
		return ErrSessionRequired
	}

	ttl := session.ExpiresAt().Sub(r.clock.Now())
	if ttl <= 0 {
		return ErrSessionAlreadyExpired
	}

	payload, err := json.Marshal(newSessionRecord(session))
	if err != nil {
		return err
	}

	sessionID := session.ID().String()
	identity := session.Identity()

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(sessionID), payload, ttl)

		for _, indexKey := range identityIndexKeys(identity) {
			pipe.SAdd(ctx, indexKey, sessionID)
			// Index keys live as long as their longest session.
			pipe.ExpireNX(ctx, indexKey, ttl)
			pipe.ExpireGT(ctx, indexKey, ttl)
		}

		return nil
	})

	return err
}

// UpdateSession only writes when the key still exists, so a session deleted
// by logout is not recreated by a concurrent token refresh.
func (r *sessionRepository) UpdateSession(ctx context.Context, session *domainsession.Session) error {
	if session == nil {
		return ErrSessionRequired
	}

	ttl := session.ExpiresAt().Sub(r.clock.Now())
	if ttl <= 0 {
		return ErrSessionAlreadyExpired
	}

	payload, err := json.Marshal(newSessionRecord(session))
	if err != nil {
		return err
	}

	err = r.client.SetArgs(ctx, sessionKey(session.ID().String()), payload, redis.SetArgs{
		Mode: "XX",
		TTL:  ttl,
	}).Err()
	if errors.Is(err, redis.Nil) {
		return domainsession.ErrSessionNotFound
	}

	return err
}

func (r *sessionRepository) GetSession(ctx context.Context, sessionID domainsession.ID) (*domainsession.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(sessionID.String())).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domainsession.ErrSessionNotFound
	}

	if err != nil {
		return nil, err
	}

	var record sessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecordCorrupted, err)
	}

	session, err := record.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecordCorrupted, err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID domainsession.ID) error {
	session, err := r.GetSession(ctx, sessionID)
	if errors.Is(err, domainsession.ErrSessionNotFound) {
		return nil
	}

	if err != nil && !errors.Is(err, ErrRecordCorrupted) {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(sessionID.String()))

		if session != nil {
			for _, indexKey := range identityIndexKeys(session.Identity()) {
				pipe.SRem(ctx, indexKey, sessionID.String())
			}
		}

		return nil
	})

	return err
}

func (r *sessionRepository) DeleteSessionsByLogoutTarget(ctx context.Context, target domainsession.LogoutTarget) (int, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	indexKey := subjectIndexKey(target.Provider, target.Subject)
	if target.ProviderSessionID != "" {
		indexKey = providerSessionIndexKey(target.Provider, target.ProviderSessionID)
	}

	sessionIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return 0, err
	}

	if len(sessionIDs) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		keys = append(keys, sessionKey(id))
	}

	var deleted *redis.IntCmd

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, keys...)
		pipe.Del(ctx, indexKey)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return int(deleted.Val()), nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("auth:session:%s", sessionID)
}

func providerSessionIndexKey(provider domainoidc.ProviderID, sid string) string {
	return fmt.Sprintf("auth:session:sid:%s:%s", provider, sid)
}

func subjectIndexKey(provider domainoidc.ProviderID, subject string) string {
	return fmt.Sprintf("auth:session:sub:%s:%s", provider, subject)
}

func identityIndexKeys(identity domainsession.Identity) []string {
	if identity.Provider == "" {
		return nil
	}

	var keys []string
	if identity.ProviderSessionID != "" {
		keys = append(keys, providerSessionIndexKey(identity.Provider, identity.ProviderSessionID))
	}

	if identity.Subject != "" {
		keys = append(keys, subjectIndexKey(identity.Provider, identity.Subject))
	}

	return keys
}
