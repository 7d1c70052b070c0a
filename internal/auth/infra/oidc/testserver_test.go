package oidc

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	oidccfg "github.com/KasumiMercury/primind-auth/internal/auth/config/oidc"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
)

const (
	testClientID     = "client-id"
	testClientSecret = "client-secret"
	testRedirectURI  = "https://app.example.com/auth/callback"
	testKeyID        = "test-key"
)

var testNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

type testProviderConfig struct {
	core oidccfg.CoreConfig
}

func (c testProviderConfig) ProviderID() domainoidc.ProviderID { return domainoidc.ProviderDefault }

func (c testProviderConfig) Core() oidccfg.CoreConfig { return c.core }

func (c testProviderConfig) Validate() error { return nil }

// fakeIssuer serves discovery, JWKS and a scriptable token endpoint.
type fakeIssuer struct {
	server *httptest.Server
	key    *rsa.PrivateKey

	mu           sync.Mutex
	tokenHandler http.HandlerFunc
	lastForm     map[string]string
}

func newFakeIssuer(t *testing.T) *fakeIssuer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	f := &fakeIssuer{key: key}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /.well-known/openid-configuration", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"issuer":                                f.issuer(),
			"authorization_endpoint":                f.issuer() + "/authorize",
			"token_endpoint":                        f.issuer() + "/oauth/token",
			"jwks_uri":                              f.issuer() + "/jwks",
			"end_session_endpoint":                  f.issuer() + "/logout",
			"response_types_supported":              []string{"code"},
			"subject_types_supported":               []string{"public"},
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	})
	mux.HandleFunc("GET /jwks", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, jose.JSONWebKeySet{Keys: []jose.JSONWebKey{{
			Key:       &key.PublicKey,
			KeyID:     testKeyID,
			Algorithm: string(jose.RS256),
			Use:       "sig",
		}}})
	})
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})

			return
		}

		f.mu.Lock()
		f.lastForm = make(map[string]string, len(r.PostForm))
		for k := range r.PostForm {
			f.lastForm[k] = r.PostForm.Get(k)
		}
		handler := f.tokenHandler
		f.mu.Unlock()

		if handler == nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server_error"})

			return
		}

		handler(w, r)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeIssuer) issuer() string {
	return f.server.URL
}

func (f *fakeIssuer) onToken(handler http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tokenHandler = handler
}

func (f *fakeIssuer) form() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastForm
}

func (f *fakeIssuer) provider(t *testing.T, postLogoutRedirectURI string) *RPProvider {
	t.Helper()

	provider, err := NewRPProvider(context.Background(), testProviderConfig{core: oidccfg.CoreConfig{
		ClientID:              testClientID,
		ClientSecret:          testClientSecret,
		RedirectURI:           testRedirectURI,
		PostLogoutRedirectURI: postLogoutRedirectURI,
		Scopes:                []string{"openid", "profile", "offline_access"},
		IssuerURL:             f.issuer(),
	}}, WithHTTPClient(f.server.Client()), WithClock(clock.NewFixedClock(testNow)))
	if err != nil {
		t.Fatalf("NewRPProvider returned error: %v", err)
	}

	return provider
}

// sign issues a JWT with the issuer key. Missing registered claims are
// filled with values a relying party accepts right now.
func (f *fakeIssuer) sign(t *testing.T, claims map[string]any) string {
	t.Helper()

	now := time.Now()
	defaults := map[string]any{
		"iss": f.issuer(),
		"aud": testClientID,
		"iat": now.Add(-time.Minute).Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}

	for k, v := range defaults {
		if _, ok := claims[k]; !ok {
			claims[k] = v
		}
	}

	return signWith(t, f.key, claims)
}

func signWith(t *testing.T, key *rsa.PrivateKey, claims map[string]any) string {
	t.Helper()

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.RS256, Key: jose.JSONWebKey{Key: key, KeyID: testKeyID}},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}

	raw, err := jwt.Signed(signer).Claims(claims).Serialize()
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return raw
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// staticKeySet verifies signatures against one known key.
type staticKeySet struct {
	key *rsa.PublicKey
}

func (s staticKeySet) VerifySignature(_ context.Context, jws *jose.JSONWebSignature) ([]byte, error) {
	return jws.Verify(s.key)
}
