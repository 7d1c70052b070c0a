package oidc

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"log/slog"

	domain "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
)

type OIDCParamsGenerator interface {
	Generate(ctx context.Context, req *GenerateRequest) (*ParamsResult, error)
}

type OIDCProvider interface {
	ProviderID() domain.ProviderID
	BuildAuthorizationURL(state, nonce, codeChallenge string) string
}

type GenerateRequest struct {
	Provider domain.ProviderID
	// ReturnTo is the same-origin path the user lands on after login.
	ReturnTo string
}

type ParamsResult struct {
	AuthorizationURL string
	State            string
}

type paramsGenerator struct {
	providers map[domain.ProviderID]OIDCProvider
	repo      domain.ParamsRepository
	clock     clock.Clock
	logger    *slog.Logger
}

func NewParamsGenerator(
	providers map[domain.ProviderID]OIDCProvider,
	repo domain.ParamsRepository,
) OIDCParamsGenerator {
	return NewParamsGeneratorWithClock(providers, repo, &clock.RealClock{})
}

func NewParamsGeneratorWithClock(
	providers map[domain.ProviderID]OIDCProvider,
	repo domain.ParamsRepository,
	clk clock.Clock,
) OIDCParamsGenerator {
	return &paramsGenerator{
		providers: providers,
		repo:      repo,
		clock:     clk,
		logger:    slog.Default().WithGroup("auth").WithGroup("oidc").WithGroup("params"),
	}
}

func (g *paramsGenerator) Generate(ctx context.Context, req *GenerateRequest) (*ParamsResult, error) {
	if req == nil {
		return nil, ErrRequestNil
	}

	if len(g.providers) == 0 {
		return nil, ErrOIDCNotConfigured
	}

	rpProvider, ok := g.providers[req.Provider]
	if !ok {
		g.logger.WarnContext(ctx, "oidc params requested for unsupported provider", slog.String("provider", string(req.Provider)))

		return nil, ErrProviderUnsupported
	}

	g.logger.DebugContext(ctx, "generating oidc authorization params", slog.String("provider", string(req.Provider)))

	state, err := randomToken()
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to generate state token", slog.String("error", err.Error()))

		return nil, err
	}

	nonce, err := randomToken()
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to generate nonce token", slog.String("error", err.Error()))

		return nil, err
	}

	codeVerifier, err := randomToken()
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to generate code verifier", slog.String("error", err.Error()))

		return nil, err
	}

	params, err := domain.NewParamsWithReturnTo(req.Provider, state, nonce, codeVerifier, req.ReturnTo, g.clock.Now())
	if err != nil {
		g.logger.WarnContext(ctx, "failed to build params model", slog.String("error", err.Error()))

		return nil, err
	}

	if err := g.repo.SaveParams(ctx, params); err != nil {
		g.logger.ErrorContext(ctx, "failed to persist oidc params", slog.String("error", err.Error()))

		return nil, err
	}

	authURL := rpProvider.BuildAuthorizationURL(state, nonce, generateCodeChallenge(codeVerifier))

	g.logger.DebugContext(ctx, "generated oidc authorization params", slog.String("provider", string(req.Provider)))

	return &ParamsResult{
		AuthorizationURL: authURL,
		State:            state,
	}, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func generateCodeChallenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))

	return base64.RawURLEncoding.EncodeToString(hash[:])
}
