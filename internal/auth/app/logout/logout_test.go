package logout

import (
	"context"
	"errors"
	"testing"
	"time"

	appsession "github.com/KasumiMercury/primind-auth/internal/auth/app/session"
	sessionCfg "github.com/KasumiMercury/primind-auth/internal/auth/config/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	domainsession "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/user"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/jwt"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/repository"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	repo     domainsession.SessionRepository
	cfg      *sessionCfg.Config
	resolver SessionResolver
}

func newFixture() *fixture {
	clk := clock.NewFixedClock(testNow)
	cfg := &sessionCfg.Config{Duration: time.Hour, Secret: "test-secret"}
	repo := repository.NewInMemorySessionRepositoryWithClock(clk)

	return &fixture{
		repo:     repo,
		cfg:      cfg,
		resolver: appsession.NewValidateSessionHandlerWithClock(repo, jwt.NewSessionJWTValidatorWithClock(cfg, clk), clk),
	}
}

func (f *fixture) saveSession(t *testing.T, identity domainsession.Identity, idToken string) (*domainsession.Session, string) {
	t.Helper()

	userID, err := user.NewID()
	if err != nil {
		t.Fatalf("failed to create user id: %v", err)
	}

	session, err := domainsession.NewSession(userID, testNow, testNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	session.SetIdentity(identity)

	if err := session.SetTokens(domainsession.TokenSet{AccessToken: "at", IDToken: idToken}); err != nil {
		t.Fatalf("failed to set tokens: %v", err)
	}

	if err := f.repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("failed to persist session: %v", err)
	}

	token, err := jwt.NewSessionJWTGenerator(f.cfg).Generate(session)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return session, token
}

func TestLogoutSuccess(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctrl := gomock.NewController(t)

	provider := NewMockLogoutProvider(ctrl)
	provider.EXPECT().EndSessionURL("id-token").Return("https://issuer.example.com/v2/logout?client_id=abc", nil)

	session, sessionToken := f.saveSession(t, domainsession.Identity{Provider: domainoidc.ProviderDefault, Subject: "sub"}, "id-token")

	handler := NewLogoutHandler(map[domainoidc.ProviderID]LogoutProvider{domainoidc.ProviderDefault: provider}, f.resolver, f.repo)

	resp, err := handler.Logout(context.Background(), &LogoutRequest{SessionToken: sessionToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.EndSessionURL != "https://issuer.example.com/v2/logout?client_id=abc" {
		t.Fatalf("unexpected end session url %q", resp.EndSessionURL)
	}

	if _, err := f.repo.GetSession(context.Background(), session.ID()); !errors.Is(err, domainsession.ErrSessionNotFound) {
		t.Fatalf("expected session to be deleted, got %v", err)
	}
}

func TestLogoutWithoutProviderLogout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider func(ctrl *gomock.Controller) LogoutProvider
	}{
		{
			name: "end session endpoint missing",
			provider: func(ctrl *gomock.Controller) LogoutProvider {
				provider := NewMockLogoutProvider(ctrl)
				provider.EXPECT().EndSessionURL(gomock.Any()).Return("", errors.New("not supported"))

				return provider
			},
		},
		{
			name: "provider no longer configured",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			ctrl := gomock.NewController(t)

			providers := map[domainoidc.ProviderID]LogoutProvider{}
			if tt.provider != nil {
				providers[domainoidc.ProviderDefault] = tt.provider(ctrl)
			}

			_, sessionToken := f.saveSession(t, domainsession.Identity{Provider: domainoidc.ProviderDefault, Subject: "sub"}, "")

			resp, err := NewLogoutHandler(providers, f.resolver, f.repo).Logout(context.Background(), &LogoutRequest{SessionToken: sessionToken})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if resp.EndSessionURL != "" {
				t.Fatalf("expected no end session url, got %q", resp.EndSessionURL)
			}
		})
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	t.Parallel()

	f := newFixture()
	handler := NewLogoutHandler(nil, f.resolver, f.repo)

	if _, err := handler.Logout(context.Background(), nil); !errors.Is(err, ErrRequestNil) {
		t.Fatalf("expected ErrRequestNil, got %v", err)
	}

	for _, token := range []string{"", "garbage"} {
		resp, err := handler.Logout(context.Background(), &LogoutRequest{SessionToken: token})
		if err != nil {
			t.Fatalf("token %q: unexpected error: %v", token, err)
		}

		if resp.EndSessionURL != "" {
			t.Fatalf("token %q: unexpected end session url %q", token, resp.EndSessionURL)
		}
	}
}

func TestHandleBackchannelLogout(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctrl := gomock.NewController(t)

	target, _ := f.saveSession(t, domainsession.Identity{Provider: domainoidc.ProviderGoogle, Subject: "sub-1", ProviderSessionID: "sid-1"}, "")
	sameSubject, _ := f.saveSession(t, domainsession.Identity{Provider: domainoidc.ProviderGoogle, Subject: "sub-1", ProviderSessionID: "sid-2"}, "")
	otherProvider, _ := f.saveSession(t, domainsession.Identity{Provider: domainoidc.ProviderDefault, Subject: "sub-1", ProviderSessionID: "sid-1"}, "")

	// Providers are tried in name order: "default" rejects, "google" accepts.
	generic := NewMockLogoutProvider(ctrl)
	generic.EXPECT().VerifyLogoutToken(gomock.Any(), "logout-token").Return(nil, errors.New("issuer mismatch"))

	google := NewMockLogoutProvider(ctrl)
	google.EXPECT().VerifyLogoutToken(gomock.Any(), "logout-token").Return(&LogoutClaims{Subject: "sub-1", SessionID: "sid-1"}, nil)

	handler := NewLogoutHandler(map[domainoidc.ProviderID]LogoutProvider{
		domainoidc.ProviderDefault: generic,
		domainoidc.ProviderGoogle:  google,
	}, f.resolver, f.repo)

	result, err := handler.HandleBackchannelLogout(context.Background(), "logout-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Provider != domainoidc.ProviderGoogle || result.DeletedSessions != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	if _, err := f.repo.GetSession(context.Background(), target.ID()); !errors.Is(err, domainsession.ErrSessionNotFound) {
		t.Fatalf("expected sid-1 session to be deleted, got %v", err)
	}

	for _, kept := range []*domainsession.Session{sameSubject, otherProvider} {
		if _, err := f.repo.GetSession(context.Background(), kept.ID()); err != nil {
			t.Fatalf("session %s should survive: %v", kept.ID(), err)
		}
	}
}

func TestHandleBackchannelLogoutErrors(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("redis down")

	tests := []struct {
		name  string
		token string
		setup func(provider *MockLogoutProvider, repo *domainsession.MockSessionRepository)
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "rejected by every provider",
			token: "forged",
			setup: func(provider *MockLogoutProvider, _ *domainsession.MockSessionRepository) {
				provider.EXPECT().VerifyLogoutToken(gomock.Any(), "forged").Return(nil, errors.New("bad signature"))
			},
		},
		{
			name:  "store failure",
			token: "logout-token",
			setup: func(provider *MockLogoutProvider, repo *domainsession.MockSessionRepository) {
				provider.EXPECT().VerifyLogoutToken(gomock.Any(), "logout-token").Return(&LogoutClaims{Subject: "sub"}, nil)
				repo.EXPECT().DeleteSessionsByLogoutTarget(gomock.Any(), domainsession.LogoutTarget{
					Provider: domainoidc.ProviderDefault,
					Subject:  "sub",
				}).Return(0, storeErr)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			provider := NewMockLogoutProvider(ctrl)
			repo := domainsession.NewMockSessionRepository(ctrl)

			if tt.setup != nil {
				tt.setup(provider, repo)
			}

			handler := NewLogoutHandler(map[domainoidc.ProviderID]LogoutProvider{domainoidc.ProviderDefault: provider}, newFixture().resolver, repo)

			_, err := handler.HandleBackchannelLogout(context.Background(), tt.token)

			var logoutErr *autherr.BackchannelLogoutError
			if !errors.As(err, &logoutErr) {
				t.Fatalf("expected *autherr.BackchannelLogoutError, got %T: %v", err, err)
			}

			if errors.Is(err, storeErr) {
				t.Fatalf("store details must not leak into the returned error")
			}
		})
	}
}
