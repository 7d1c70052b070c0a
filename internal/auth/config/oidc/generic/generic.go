// Package generic configures any OpenID Connect provider that publishes a
// discovery document under its issuer URL.
package generic

import (
	"errors"
	"os"
	"strings"

	"github.com/KasumiMercury/primind-auth/internal/auth/config/oidc"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
)

const (
	issuerURLEnv = "OIDC_ISSUER_URL"
	clientIDEnv  = "OIDC_CLIENT_ID"
	//nolint:gosec // This is an environment variable name, not a hardcoded credential
	clientSecretEnv = "OIDC_CLIENT_SECRET"
	redirectURIEnv  = "OIDC_REDIRECT_URI"
	scopesEnv       = "OIDC_SCOPES"
	postLogoutEnv   = "OIDC_POST_LOGOUT_REDIRECT_URI"
)

var (
	ErrClientIDMissing     = errors.New("oidc client id missing")
	ErrClientSecretMissing = errors.New("oidc client secret missing")
	ErrRedirectURIMissing  = errors.New("oidc redirect uri missing")
)

func init() {
	oidc.RegisterProvider(domainoidc.ProviderDefault, loadConfig)
}

type Config struct {
	core oidc.CoreConfig
}

var _ oidc.ProviderConfig = (*Config)(nil)

func loadConfig() (oidc.ProviderConfig, bool, error) {
	issuer := os.Getenv(issuerURLEnv)
	if issuer == "" {
		return nil, false, nil
	}

	clientID := os.Getenv(clientIDEnv)
	if clientID == "" {
		return nil, false, ErrClientIDMissing
	}

	clientSecret := os.Getenv(clientSecretEnv)
	if clientSecret == "" {
		return nil, false, ErrClientSecretMissing
	}

	redirectURI := os.Getenv(redirectURIEnv)
	if redirectURI == "" {
		return nil, false, ErrRedirectURIMissing
	}

	scopes := []string{"openid", "profile", "email", "offline_access"}
	if raw := os.Getenv(scopesEnv); raw != "" {
		scopes = strings.Fields(strings.ReplaceAll(raw, ",", " "))
	}

	return &Config{
		core: oidc.CoreConfig{
			ClientID:              clientID,
			ClientSecret:          clientSecret,
			RedirectURI:           redirectURI,
			PostLogoutRedirectURI: os.Getenv(postLogoutEnv),
			Scopes:                scopes,
			IssuerURL:             strings.TrimSuffix(issuer, "/"),
		},
	}, true, nil
}

func (c *Config) ProviderID() domainoidc.ProviderID {
	return domainoidc.ProviderDefault
}

func (c *Config) Core() oidc.CoreConfig {
	return c.core
}

func (c *Config) Validate() error {
	return nil
}
