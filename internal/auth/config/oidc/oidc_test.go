package oidc

import (
	"errors"
	"testing"

	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
)

type stubProvider struct {
	id          domainoidc.ProviderID
	coreCfg     CoreConfig
	validateErr error
}

func (s stubProvider) ProviderID() domainoidc.ProviderID { return s.id }

func (s stubProvider) Core() CoreConfig { return s.coreCfg }

func (s stubProvider) Validate() error { return s.validateErr }

func validCoreConfig() CoreConfig {
	return CoreConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://app.example.com/auth/callback",
		Scopes:       []string{"openid", "profile"},
		IssuerURL:    "https://issuer.example.com",
	}
}

func TestCoreConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *CoreConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*CoreConfig) {}},
		{
			name:   "valid with post logout redirect",
			mutate: func(c *CoreConfig) { c.PostLogoutRedirectURI = "http://localhost:3000/" },
		},
		{name: "missing client id", mutate: func(c *CoreConfig) { c.ClientID = "" }, wantErr: ErrClientIDMissing},
		{name: "missing client secret", mutate: func(c *CoreConfig) { c.ClientSecret = "" }, wantErr: ErrClientSecretMissing},
		{name: "missing redirect uri", mutate: func(c *CoreConfig) { c.RedirectURI = "" }, wantErr: ErrRedirectURIMissing},
		{
			name:    "redirect without scheme",
			mutate:  func(c *CoreConfig) { c.RedirectURI = "app.example.com/auth/callback" },
			wantErr: ErrRedirectSchemeMissing,
		},
		{
			name:    "redirect with foreign scheme",
			mutate:  func(c *CoreConfig) { c.RedirectURI = "ftp://app.example.com/auth/callback" },
			wantErr: ErrRedirectSchemeInvalid,
		},
		{
			name:    "post logout redirect without scheme",
			mutate:  func(c *CoreConfig) { c.PostLogoutRedirectURI = "app.example.com/" },
			wantErr: ErrRedirectSchemeMissing,
		},
		{
			name:    "post logout redirect with foreign scheme",
			mutate:  func(c *CoreConfig) { c.PostLogoutRedirectURI = "javascript://app.example.com/" },
			wantErr: ErrRedirectSchemeInvalid,
		},
		{
			name:    "post logout redirect unparsable",
			mutate:  func(c *CoreConfig) { c.PostLogoutRedirectURI = "http://[::1]:namedport" },
			wantErr: ErrRedirectSchemeInvalid,
		},
		{name: "missing scopes", mutate: func(c *CoreConfig) { c.Scopes = nil }, wantErr: ErrScopesMissing},
		{
			name:    "openid scope absent",
			mutate:  func(c *CoreConfig) { c.Scopes = []string{"profile"} },
			wantErr: ErrScopeOpenIDRequired,
		},
		{name: "missing issuer", mutate: func(c *CoreConfig) { c.IssuerURL = "" }, wantErr: ErrIssuerURLMissing},
		{
			name:    "plain http issuer",
			mutate:  func(c *CoreConfig) { c.IssuerURL = "http://issuer.example.com" },
			wantErr: ErrIssuerURLSchemeInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validCoreConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		providers map[domainoidc.ProviderID]ProviderConfig
		wantErr   error
	}{
		{
			name: "valid provider",
			providers: map[domainoidc.ProviderID]ProviderConfig{
				domainoidc.ProviderDefault: stubProvider{id: domainoidc.ProviderDefault, coreCfg: validCoreConfig()},
			},
		},
		{
			name:      "no providers",
			providers: map[domainoidc.ProviderID]ProviderConfig{},
			wantErr:   ErrNoOIDCProviders,
		},
		{
			name:      "nil provider",
			providers: map[domainoidc.ProviderID]ProviderConfig{domainoidc.ProviderGoogle: nil},
			wantErr:   ErrProviderConfigNil,
		},
		{
			name: "provider id mismatch",
			providers: map[domainoidc.ProviderID]ProviderConfig{
				domainoidc.ProviderGoogle: stubProvider{id: domainoidc.ProviderDefault, coreCfg: validCoreConfig()},
			},
			wantErr: ErrProviderIDMismatch,
		},
		{
			name: "invalid core config",
			providers: map[domainoidc.ProviderID]ProviderConfig{
				domainoidc.ProviderGoogle: stubProvider{id: domainoidc.ProviderGoogle},
			},
			wantErr: ErrProviderCoreInvalid,
		},
		{
			name: "invalid post logout redirect",
			providers: map[domainoidc.ProviderID]ProviderConfig{
				domainoidc.ProviderDefault: stubProvider{
					id: domainoidc.ProviderDefault,
					coreCfg: func() CoreConfig {
						c := validCoreConfig()
						c.PostLogoutRedirectURI = "/signed-out"

						return c
					}(),
				},
			},
			wantErr: ErrRedirectSchemeMissing,
		},
		{
			name: "provider specific validation",
			providers: map[domainoidc.ProviderID]ProviderConfig{
				domainoidc.ProviderGoogle: stubProvider{
					id:          domainoidc.ProviderGoogle,
					coreCfg:     validCoreConfig(),
					validateErr: errors.New("bad provider"),
				},
			},
			wantErr: ErrProviderValidateFail,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := (&Config{Providers: tt.providers}).Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// replaceLoaders swaps the package registry for the duration of a test.
// Tests using it must not run in parallel.
func replaceLoaders(t *testing.T, replacement map[domainoidc.ProviderID]ProviderLoader) {
	t.Helper()

	original := loaders
	loaders = replacement

	t.Cleanup(func() { loaders = original })
}

func TestLoad(t *testing.T) {
	loaderErr := errors.New("loader failed")

	enabled := func(id domainoidc.ProviderID) ProviderLoader {
		return func() (ProviderConfig, bool, error) {
			return stubProvider{id: id, coreCfg: validCoreConfig()}, true, nil
		}
	}
	disabled := func() (ProviderConfig, bool, error) { return nil, false, nil }

	tests := []struct {
		name          string
		loaders       map[domainoidc.ProviderID]ProviderLoader
		wantProviders []domainoidc.ProviderID
		wantErr       error
	}{
		{
			name: "enabled providers are collected",
			loaders: map[domainoidc.ProviderID]ProviderLoader{
				domainoidc.ProviderDefault: enabled(domainoidc.ProviderDefault),
				domainoidc.ProviderGoogle:  disabled,
			},
			wantProviders: []domainoidc.ProviderID{domainoidc.ProviderDefault},
		},
		{
			name:    "nothing registered",
			loaders: map[domainoidc.ProviderID]ProviderLoader{},
			wantErr: ErrNoProvidersConfigured,
		},
		{
			name:    "every provider disabled",
			loaders: map[domainoidc.ProviderID]ProviderLoader{domainoidc.ProviderGoogle: disabled},
			wantErr: ErrNoProvidersConfigured,
		},
		{
			name: "loader failure",
			loaders: map[domainoidc.ProviderID]ProviderLoader{
				domainoidc.ProviderGoogle: func() (ProviderConfig, bool, error) { return nil, false, loaderErr },
			},
			wantErr: loaderErr,
		},
		{
			name: "loaded provider fails validation",
			loaders: map[domainoidc.ProviderID]ProviderLoader{
				domainoidc.ProviderGoogle: enabled(domainoidc.ProviderDefault),
			},
			wantErr: ErrProviderIDMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replaceLoaders(t, tt.loaders)

			cfg, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr != nil {
				if cfg != nil {
					t.Fatalf("expected nil config on error, got %#v", cfg)
				}

				return
			}

			if len(cfg.Providers) != len(tt.wantProviders) {
				t.Fatalf("loaded %d providers, want %d", len(cfg.Providers), len(tt.wantProviders))
			}

			for _, id := range tt.wantProviders {
				if _, ok := cfg.Providers[id]; !ok {
					t.Fatalf("provider %s missing from %v", id, cfg.Providers)
				}
			}
		})
	}
}

func TestRegisterProviderRejectsDuplicates(t *testing.T) {
	replaceLoaders(t, map[domainoidc.ProviderID]ProviderLoader{})

	loader := func() (ProviderConfig, bool, error) { return nil, false, nil }
	RegisterProvider(domainoidc.ProviderGoogle, loader)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
	}()

	RegisterProvider(domainoidc.ProviderGoogle, loader)
}
