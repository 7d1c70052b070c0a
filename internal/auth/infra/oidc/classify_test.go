package oidc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
	"github.com/zitadel/oidc/v3/pkg/oidc"
	"golang.org/x/oauth2"
)

func TestProviderErrorFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantOK      bool
		wantCode    string
		wantMessage string
	}{
		{
			name:        "oauth2 retrieve error",
			err:         fmt.Errorf("exchange: %w", &oauth2.RetrieveError{ErrorCode: "invalid_grant", ErrorDescription: "code expired"}),
			wantOK:      true,
			wantCode:    "invalid_grant",
			wantMessage: "code expired",
		},
		{
			name:        "oidc error without description",
			err:         &oidc.Error{ErrorType: oidc.InvalidClient},
			wantOK:      true,
			wantCode:    "invalid_client",
			wantMessage: "An error occurred while interacting with the authorization server.",
		},
		{
			name: "retrieve error without code",
			err:  &oauth2.RetrieveError{},
		},
		{
			name: "transport failure",
			err:  errors.New("dial tcp: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			providerErr, ok := providerErrorFrom(tt.err)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}

			if !ok {
				return
			}

			if providerErr.Code().String() != tt.wantCode || providerErr.Message().String() != tt.wantMessage {
				t.Fatalf("unexpected provider error: code=%q message=%q", providerErr.Code(), providerErr.Message())
			}
		})
	}
}

func TestRejectedKeepsCause(t *testing.T) {
	t.Parallel()

	providerErr, err := autherr.NewProviderError("invalid_grant", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wrapped := rejected(providerErr)

	if !errors.Is(wrapped, ErrTokenEndpointRejected) {
		t.Fatalf("expected ErrTokenEndpointRejected")
	}

	cause, ok := autherr.CauseOf(wrapped)
	if !ok || cause != providerErr {
		t.Fatalf("expected the same provider error instance, got %v", cause)
	}
}
