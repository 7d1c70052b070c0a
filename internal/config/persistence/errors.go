package persistence

import "errors"

var (
	ErrInvalidRedisDB = errors.New("invalid redis db value")
	ErrConfigNil      = errors.New("persistence config is nil")
)
