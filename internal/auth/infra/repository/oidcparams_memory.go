package repository

import (
	"context"
	"sync"

	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
)

type inMemoryOIDCParamsRepository struct {
	mu      sync.Mutex
	byState map[string]domainoidc.Params
	clock   clock.Clock
}

func NewInMemoryOIDCParamsRepository() domainoidc.ParamsRepository {
	return NewInMemoryOIDCParamsRepositoryWithClock(&clock.RealClock{})
}

func NewInMemoryOIDCParamsRepositoryWithClock(clk clock.Clock) domainoidc.ParamsRepository {
	return &inMemoryOIDCParamsRepository{
		byState: make(map[string]domainoidc.Params),
		clock:   clk,
	}
}

func (r *inMemoryOIDCParamsRepository) SaveParams(_ context.Context, params *domainoidc.Params) error {
	if params == nil {
		return ErrParamsRequired
	}

	now := r.clock.Now()
	if params.IsExpired(now) {
		return ErrParamsAlreadyExpired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for state, stored := range r.byState {
		if stored.IsExpired(now) {
			delete(r.byState, state)
		}
	}

	r.byState[params.State()] = *params

	return nil
}

func (r *inMemoryOIDCParamsRepository) GetParamsByState(_ context.Context, state string) (*domainoidc.Params, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	params, ok := r.byState[state]
	if !ok {
		return nil, domainoidc.ErrParamsNotFound
	}

	return &params, nil
}

func (r *inMemoryOIDCParamsRepository) DeleteParams(_ context.Context, state string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byState, state)

	return nil
}
