package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/mintora/goapi/base/ctx"
)

// Forever marks a key without an associated expire.
const Forever = time.Duration(-1)

var (
	// ErrNotFound aliases redigo's nil reply so callers can compare a single sentinel.
	ErrNotFound = redis.ErrNil

	// ErrNoTTL is returned by TTL when the key exists but never expires.
	ErrNoTTL = errors.New("key has no associated ttl")

	// ErrGapTime is returned when no pool is available to serve the command.
	ErrGapTime = errors.New("redis pool unavailable")
)

type Service interface {
	Get(ctx ctx.Ctx, key string) ([]byte, error)
	Set(ctx ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(ctx ctx.Ctx, ks ...string) (int, error)
	Exists(ctx ctx.Ctx, key string) (bool, error)
	// TTL returns the remaining lifetime in seconds, ErrNotFound when the key
	// is absent and ErrNoTTL when it never expires.
	TTL(ctx ctx.Ctx, key string) (int, error)
	Incrby(ctx ctx.Ctx, key string, val int) (int64, error)
}
