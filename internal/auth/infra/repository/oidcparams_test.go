package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"github.com/KasumiMercury/primind-auth/internal/auth/testutil"
)

func TestOIDCParamsRepositoryIntegrationSuccess(t *testing.T) {
	ctx := context.Background()

	client := testutil.NewRedis(ctx, t)

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	repo := NewOIDCParamsRepositoryWithClock(client, clock.NewFixedClock(now))

	params, err := domainoidc.NewParamsWithReturnTo(domainoidc.ProviderGoogle, "state-1", "nonce-1", "code-1", "/dashboard", now.Add(-time.Minute))
	if err != nil {
		t.Fatalf("failed to create params: %v", err)
	}

	if err := repo.SaveParams(ctx, params); err != nil {
		t.Fatalf("SaveParams returned error: %v", err)
	}

	found, err := repo.GetParamsByState(ctx, "state-1")
	if err != nil {
		t.Fatalf("GetParamsByState returned error: %v", err)
	}

	if found.State() != "state-1" || found.Nonce() != "nonce-1" || found.ReturnTo() != "/dashboard" {
		t.Fatalf("unexpected params data")
	}

	if err := repo.DeleteParams(ctx, "state-1"); err != nil {
		t.Fatalf("DeleteParams returned error: %v", err)
	}

	if _, err := repo.GetParamsByState(ctx, "state-1"); !errors.Is(err, domainoidc.ErrParamsNotFound) {
		t.Fatalf("expected ErrParamsNotFound after delete, got %v", err)
	}
}

func TestOIDCParamsRepositoryIntegrationError(t *testing.T) {
	ctx := context.Background()

	client := testutil.NewRedis(ctx, t)

	repo := NewOIDCParamsRepository(client)

	if err := repo.SaveParams(ctx, nil); !errors.Is(err, ErrParamsRequired) {
		t.Fatalf("expected ErrParamsRequired, got %v", err)
	}

	expired, _ := domainoidc.NewParams(domainoidc.ProviderGoogle, "state-x", "nonce-x", "code-x", time.Now().Add(-time.Hour))
	if err := repo.SaveParams(ctx, expired); !errors.Is(err, ErrParamsAlreadyExpired) {
		t.Fatalf("expected ErrParamsAlreadyExpired, got %v", err)
	}

	if _, err := repo.GetParamsByState(ctx, "missing"); !errors.Is(err, domainoidc.ErrParamsNotFound) {
		t.Fatalf("expected ErrParamsNotFound, got %v", err)
	}
}

func TestInMemoryOIDCParamsRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	repo := NewInMemoryOIDCParamsRepositoryWithClock(clock.NewFixedClock(now))

	params, err := domainoidc.NewParams(domainoidc.ProviderDefault, "state-1", "nonce-1", "code-1", now)
	if err != nil {
		t.Fatalf("failed to create params: %v", err)
	}

	if err := repo.SaveParams(ctx, params); err != nil {
		t.Fatalf("SaveParams returned error: %v", err)
	}

	found, err := repo.GetParamsByState(ctx, "state-1")
	if err != nil {
		t.Fatalf("GetParamsByState returned error: %v", err)
	}

	if found.Provider() != domainoidc.ProviderDefault || found.CodeVerifier() != "code-1" {
		t.Fatalf("unexpected params data")
	}

	if err := repo.DeleteParams(ctx, "state-1"); err != nil {
		t.Fatalf("DeleteParams returned error: %v", err)
	}

	if _, err := repo.GetParamsByState(ctx, "state-1"); !errors.Is(err, domainoidc.ErrParamsNotFound) {
		t.Fatalf("expected ErrParamsNotFound, got %v", err)
	}

	expired, _ := domainoidc.NewParams(domainoidc.ProviderDefault, "state-2", "nonce-2", "code-2", now.Add(-time.Hour))
	if err := repo.SaveParams(ctx, expired); !errors.Is(err, ErrParamsAlreadyExpired) {
		t.Fatalf("expected ErrParamsAlreadyExpired, got %v", err)
	}
}
