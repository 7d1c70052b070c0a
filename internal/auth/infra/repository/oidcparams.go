package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"github.com/redis/go-redis/v9"
)

type paramsRecord struct {
	Provider     string    `json:"provider"`
	State        string    `json:"state"`
	Nonce        string    `json:"nonce"`
	CodeVerifier string    `json:"code_verifier"`
	ReturnTo     string    `json:"return_to,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type oidcParamsRepository struct {
	client *redis.Client
	clock  clock.Clock
}

func NewOIDCParamsRepository(client *redis.Client) domainoidc.ParamsRepository {
	return NewOIDCParamsRepositoryWithClock(client, &clock.RealClock{})
}

func NewOIDCParamsRepositoryWithClock(client *redis.Client, clk clock.Clock) domainoidc.ParamsRepository {
	return &oidcParamsRepository{
		client: client,
		clock:  clk,
	}
}

func (r *oidcParamsRepository) SaveParams(ctx context.Context, params *domainoidc.Params) error {
	if params == nil {
		return ErrParamsRequired
	}

	ttl := params.ExpiresAt().Sub(r.clock.Now())
	if ttl <= 0 {
		return ErrParamsAlreadyExpired
	}

	record := paramsRecord{
		Provider:     string(params.Provider()),
		State:        params.State(),
		Nonce:        params.Nonce(),
		CodeVerifier: params.CodeVerifier(),
		ReturnTo:     params.ReturnTo(),
		CreatedAt:    params.CreatedAt(),
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, paramsKey(params.State()), payload, ttl).Err()
}

func (r *oidcParamsRepository) GetParamsByState(ctx context.Context, state string) (*domainoidc.Params, error) {
	raw, err := r.client.Get(ctx, paramsKey(state)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domainoidc.ErrParamsNotFound
	}

	if err != nil {
		return nil, err
	}

	var record paramsRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecordCorrupted, err)
	}

	return domainoidc.NewParamsWithReturnTo(
		domainoidc.ProviderID(record.Provider),
		record.State,
		record.Nonce,
		record.CodeVerifier,
		record.ReturnTo,
		record.CreatedAt,
	)
}

func (r *oidcParamsRepository) DeleteParams(ctx context.Context, state string) error {
	return r.client.Del(ctx, paramsKey(state)).Err()
}

func paramsKey(state string) string {
	return fmt.Sprintf("auth:oidc:params:%s", state)
}
