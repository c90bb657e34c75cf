package httpapi

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// ResultCache memoises encoded response JSON by raw request body; mjserve
// uses it for /v1/score, so a client retrying an identical query doesn't
// re-run the scoring pipeline.
// Unlike the per-call mahjong.Evaluator, this cache is intentionally
// process-lifetime: it keys on the full request body, not on partial
// hand state, so it cannot leak semantic state across different hands.
type ResultCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewResultCache(numKeys, maxCost int64, ttl time.Duration) (*ResultCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numKeys,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating result cache: %w", err)
	}
	return &ResultCache{cache: c, ttl: ttl}, nil
}

func (c *ResultCache) Get(key string) ([]byte, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (c *ResultCache) Set(key string, value []byte) {
	c.cache.SetWithTTL(key, value, int64(len(value)), c.ttl)
}

func (c *ResultCache) Close() { c.cache.Close() }
