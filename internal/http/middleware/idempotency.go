// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements idempotency support for quote submission. Clients may
// send an Idempotency-Key header with POST /orders; retries carrying the same
// key are served the originally created order instead of creating a
// duplicate. The replay state lives in a process-local TTL cache, which
// matches the single-process deployment model of the rate limiter above.
//
// The middleware validates the header and annotates the request context;
// handlers stay in control of storing and serving replays via ReplayCache.
package middleware

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey is the request header clients use to deduplicate
// retries of unsafe operations.
const HeaderIdempotencyKey = "Idempotency-Key"

// Context keys used internally to stash idempotency state.
const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay"
	ctxKeyRateBypass = "rate.bypass"
)

// idemKeyRE is the accepted key shape: an RFC-7230-ish token plus common
// safe characters.
var idemKeyRE = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)

// maxIdemKeyLen caps accepted key length.
const maxIdemKeyLen = 200

// GetIdempotencyKey returns the validated idempotency key stored in the Gin
// context by IdempotencyValidator. Handlers should prefer this over reading
// the header directly.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyIdemKey)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether this request replays a previously completed
// operation.
func IsReplay(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// ReplayCache remembers which resource a given idempotency key produced.
// Entries expire after the configured TTL. Safe for concurrent use.
type ReplayCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]replayEntry
}

type replayEntry struct {
	resourceID int
	createdAt  time.Time
}

// NewReplayCache constructs a ReplayCache. TTL values <= 0 default to 24h.
func NewReplayCache(ttl time.Duration) *ReplayCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &ReplayCache{
		ttl:     ttl,
		entries: make(map[string]replayEntry),
	}
}

// Put records that key produced the resource with the given ID.
func (rc *ReplayCache) Put(key string, resourceID int) {
	if key == "" {
		return
	}
	rc.mu.Lock()
	rc.entries[key] = replayEntry{resourceID: resourceID, createdAt: time.Now()}
	rc.mu.Unlock()
}

// Get returns the resource ID previously recorded for key, if the entry is
// still within its TTL. Expired entries are removed on lookup.
func (rc *ReplayCache) Get(key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	e, ok := rc.entries[key]
	if !ok {
		return 0, false
	}
	if time.Since(e.createdAt) >= rc.ttl {
		delete(rc.entries, key)
		return 0, false
	}
	return e.resourceID, true
}

// IdempotencyValidator validates the Idempotency-Key header when present,
// stashes it in the request context, and marks the request as a replay when
// the cache already holds a result for the key. Replays also bypass rate
// limiting so a retry is never blocked after the original succeeded.
//
// Requests without the header pass through untouched; an invalid key is
// rejected with 400 before any handler runs.
func IdempotencyValidator(cache *ReplayCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdemKeyLen || !idemKeyRE.MatchString(key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    "bad_idempotency_key",
				"message": "invalid Idempotency-Key",
			})
			return
		}

		c.Set(ctxKeyIdemKey, key)

		if cache != nil {
			if _, exists := cache.Get(key); exists {
				c.Set(ctxKeyIdemReplay, true)
				c.Set(ctxKeyRateBypass, true)
			}
		}

		c.Next()
	}
}
