package oidc_test

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	appoidc "github.com/KasumiMercury/primind-auth/internal/auth/app/oidc"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/repository"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateParams(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	clk := clock.NewFixedClock(testNow)
	repo := repository.NewInMemoryOIDCParamsRepositoryWithClock(clk)

	var gotState, gotNonce, gotChallenge string

	provider := appoidc.NewMockOIDCProvider(ctrl)
	provider.EXPECT().BuildAuthorizationURL(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(state, nonce, challenge string) string {
			gotState, gotNonce, gotChallenge = state, nonce, challenge

			return "https://issuer.example.com/authorize?state=" + state
		},
	)

	generator := appoidc.NewParamsGeneratorWithClock(
		map[domainoidc.ProviderID]appoidc.OIDCProvider{domainoidc.ProviderDefault: provider},
		repo,
		clk,
	)

	result, err := generator.Generate(context.Background(), &appoidc.GenerateRequest{
		Provider: domainoidc.ProviderDefault,
		ReturnTo: "/dashboard",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.State == "" || result.State != gotState {
		t.Fatalf("state mismatch: result %q, provider saw %q", result.State, gotState)
	}

	if result.AuthorizationURL != "https://issuer.example.com/authorize?state="+gotState {
		t.Fatalf("unexpected authorization url %q", result.AuthorizationURL)
	}

	stored, err := repo.GetParamsByState(context.Background(), result.State)
	if err != nil {
		t.Fatalf("params were not stored: %v", err)
	}

	if stored.Provider() != domainoidc.ProviderDefault {
		t.Fatalf("stored provider = %q", stored.Provider())
	}

	if stored.Nonce() != gotNonce {
		t.Fatalf("stored nonce %q does not match the one sent %q", stored.Nonce(), gotNonce)
	}

	if stored.ReturnTo() != "/dashboard" {
		t.Fatalf("stored return-to = %q", stored.ReturnTo())
	}

	if !stored.ExpiresAt().Equal(testNow.Add(domainoidc.ParamsExpirationDuration)) {
		t.Fatalf("unexpected expiry %s", stored.ExpiresAt())
	}

	sum := sha256.Sum256([]byte(stored.CodeVerifier()))
	if want := base64.RawURLEncoding.EncodeToString(sum[:]); gotChallenge != want {
		t.Fatalf("code challenge %q is not S256 of the stored verifier (%q)", gotChallenge, want)
	}
}

func TestGenerateParamsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		providers bool
		req       *appoidc.GenerateRequest
		wantErrIs error
	}{
		{
			name:      "nil request",
			providers: true,
			req:       nil,
			wantErrIs: appoidc.ErrRequestNil,
		},
		{
			name:      "no providers configured",
			req:       &appoidc.GenerateRequest{Provider: domainoidc.ProviderDefault},
			wantErrIs: appoidc.ErrOIDCNotConfigured,
		},
		{
			name:      "unknown provider",
			providers: true,
			req:       &appoidc.GenerateRequest{Provider: "github"},
			wantErrIs: appoidc.ErrProviderUnsupported,
		},
		{
			name:      "absolute return-to",
			providers: true,
			req:       &appoidc.GenerateRequest{Provider: domainoidc.ProviderDefault, ReturnTo: "https://evil.example.com"},
			wantErrIs: domainoidc.ErrReturnToInvalid,
		},
		{
			name:      "protocol relative return-to",
			providers: true,
			req:       &appoidc.GenerateRequest{Provider: domainoidc.ProviderDefault, ReturnTo: "//evil.example.com"},
			wantErrIs: domainoidc.ErrReturnToInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			providers := map[domainoidc.ProviderID]appoidc.OIDCProvider{}
			if tt.providers {
				providers[domainoidc.ProviderDefault] = appoidc.NewMockOIDCProvider(ctrl)
			}

			generator := appoidc.NewParamsGenerator(providers, repository.NewInMemoryOIDCParamsRepository())

			_, err := generator.Generate(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErrIs) {
				t.Fatalf("expected %v, got %v", tt.wantErrIs, err)
			}
		})
	}
}
