package idempotency

import "errors"

var (
	ErrEmptyKey    = errors.New("idempotency.store: empty key")
	ErrRedis       = errors.New("idempotency.store: redis command failed")
	ErrKeyUnstable = errors.New("idempotency.store: key kept expiring during reserve")
)
