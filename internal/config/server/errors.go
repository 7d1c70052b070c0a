package server

import "errors"

var (
	ErrPortInvalid         = errors.New("port must be between 1 and 65535")
	ErrRateLimitInvalid    = errors.New("backchannel logout rate limit must be positive")
	ErrTrustedProxyInvalid = errors.New("trusted proxy must be an IP address or CIDR range")
)
