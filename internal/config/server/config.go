package server

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
)

const (
	portEnv                   = "PORT"
	backchannelLogoutRPSEnv   = "BACKCHANNEL_LOGOUT_RPS"
	backchannelLogoutBurstEnv = "BACKCHANNEL_LOGOUT_BURST"
	trustedProxiesEnv         = "TRUSTED_PROXIES"

	defaultPort                   = 8080
	defaultBackchannelLogoutRPS   = 5.0
	defaultBackchannelLogoutBurst = 10
)

type Config struct {
	Port int

	// BackchannelLogoutRPS and BackchannelLogoutBurst bound logout token
	// submissions per client IP.
	BackchannelLogoutRPS   float64
	BackchannelLogoutBurst int

	// TrustedProxies lists the peers whose X-Forwarded-For header is used
	// to find the client IP. Empty means the header is never read.
	TrustedProxies []netip.Prefix
}

func Load() (*Config, error) {
	port, err := getEnvInt(portEnv, defaultPort)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPortInvalid, err)
	}

	burst, err := getEnvInt(backchannelLogoutBurstEnv, defaultBackchannelLogoutBurst)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateLimitInvalid, err)
	}

	rps := defaultBackchannelLogoutRPS
	if raw := os.Getenv(backchannelLogoutRPSEnv); raw != "" {
		rps, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRateLimitInvalid, err)
		}
	}

	trusted, err := parseTrustedProxies(os.Getenv(trustedProxiesEnv))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                   port,
		BackchannelLogoutRPS:   rps,
		BackchannelLogoutBurst: burst,
		TrustedProxies:         trusted,
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w, got: %d", ErrPortInvalid, c.Port)
	}

	if c.BackchannelLogoutRPS <= 0 || c.BackchannelLogoutBurst <= 0 {
		return fmt.Errorf("%w, got: rps=%v burst=%d", ErrRateLimitInvalid, c.BackchannelLogoutRPS, c.BackchannelLogoutBurst)
	}

	return nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// parseTrustedProxies reads a comma separated list of addresses or CIDR
// ranges. A bare address trusts that single host.
func parseTrustedProxies(raw string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix

	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		if strings.Contains(item, "/") {
			prefix, err := netip.ParsePrefix(item)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrTrustedProxyInvalid, err)
			}

			prefixes = append(prefixes, prefix.Masked())

			continue
		}

		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTrustedProxyInvalid, err)
		}

		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return prefixes, nil
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	return strconv.Atoi(val)
}
