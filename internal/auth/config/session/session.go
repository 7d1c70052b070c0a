package session

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	sessionSecretEnv         = "SESSION_SECRET"
	sessionDurationEnv       = "SESSION_DURATION"
	sessionPersistIDTokenEnv = "SESSION_PERSIST_ID_TOKEN"
	sessionCookieNameEnv     = "SESSION_COOKIE_NAME"
	sessionCookieSecureEnv   = "SESSION_COOKIE_SECURE"

	defaultSessionDuration = 24 * time.Hour
	DefaultCookieName      = "primind_session"
)

// Config contains session management settings.
type Config struct {
	Duration time.Duration
	Secret   string

	// PersistIDToken keeps the raw ID token in the stored session so it can
	// be sent as id_token_hint on logout.
	PersistIDToken bool

	CookieName   string
	CookieSecure bool
}

func Load() (*Config, error) {
	secret, err := getEnvRequired(sessionSecretEnv)
	if err != nil {
		return nil, err
	}

	persistIDToken, err := getEnvBool(sessionPersistIDTokenEnv, true, ErrPersistIDTokenInvalid)
	if err != nil {
		return nil, err
	}

	cookieSecure, err := getEnvBool(sessionCookieSecureEnv, true, ErrCookieSecureInvalid)
	if err != nil {
		return nil, err
	}

	cookieName := os.Getenv(sessionCookieNameEnv)
	if cookieName == "" {
		cookieName = DefaultCookieName
	}

	return &Config{
		Duration:       getEnvDuration(sessionDurationEnv, defaultSessionDuration),
		Secret:         secret,
		PersistIDToken: persistIDToken,
		CookieName:     cookieName,
		CookieSecure:   cookieSecure,
	}, nil
}

// Cookie returns the session cookie name, falling back to the default.
func (c *Config) Cookie() string {
	if c.CookieName == "" {
		return DefaultCookieName
	}

	return c.CookieName
}

func (c *Config) Validate() error {
	if c.Secret == "" {
		return ErrSessionSecretMissing
	}

	if c.Duration <= 0 {
		return fmt.Errorf("%w, got: %v", ErrSessionDurationInvalid, c.Duration)
	}

	return nil
}

func getEnvRequired(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%w: %s", ErrSessionSecretMissing, key)
	}

	return val, nil
}

func getEnvBool(key string, defaultVal bool, invalid error) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", invalid, key, val)
	}

	return b, nil
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
