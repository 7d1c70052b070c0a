package oidc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
	"github.com/zitadel/oidc/v3/pkg/client/rp"
)

// discover builds the relying party, which fetches the provider metadata
// published under issuer exactly once. Every failure is reported as a
// DiscoveryError; the underlying cause is only logged because it may contain
// provider supplied text.
func discover(ctx context.Context, issuer string, build func() (rp.RelyingParty, error)) (rp.RelyingParty, error) {
	logger := slog.Default().WithGroup("auth").WithGroup("oidc").WithGroup("discovery")

	relyingParty, err := build()
	if err != nil {
		logger.ErrorContext(ctx, "oidc discovery failed",
			slog.String("issuer", issuer),
			slog.String("error", err.Error()),
		)

		return nil, autherr.NewDiscoveryError(
			autherr.WithMessage(fmt.Sprintf("Discovery failed for the OpenID Connect configuration of %s.", issuer)),
		)
	}

	if relyingParty.OAuthConfig().Endpoint.TokenURL == "" {
		logger.ErrorContext(ctx, "oidc discovery document incomplete",
			slog.String("issuer", issuer),
			slog.Bool("has_token_endpoint", false),
		)

		return nil, autherr.NewDiscoveryError(
			autherr.WithMessage(fmt.Sprintf("Discovery document of %s is missing required endpoints.", issuer)),
		)
	}

	return relyingParty, nil
}
