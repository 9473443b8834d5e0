package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// ParseOutcome is the cached verdict for one formula line
type ParseOutcome struct {
	OK       bool
	Rendered string
	Tree     string
	Error    string
	Stage    string
	Nodes    int
	Depth    int
}

// ResultCache caches parse verdicts keyed by the exact input line.
// Parsing is deterministic, so a stored verdict can be replayed for
// repeated requests of the same formula.
type ResultCache struct {
	cache *Cache
}

// NewResultCache creates a parse-result cache
func NewResultCache(cfg Config) *ResultCache {
	return &ResultCache{cache: New(cfg)}
}

// Get returns the cached verdict for the given formula line
func (rc *ResultCache) Get(input string) (ParseOutcome, bool) {
	val, ok := rc.cache.Get(resultKey(input))
	if !ok {
		return ParseOutcome{}, false
	}
	out, ok := val.(ParseOutcome)
	return out, ok
}

// Put stores the verdict for the given formula line
func (rc *ResultCache) Put(input string, out ParseOutcome) {
	rc.cache.Set(resultKey(input), out)
}

// Size returns the number of cached verdicts
func (rc *ResultCache) Size() int {
	return rc.cache.Size()
}

// Metrics returns hit/miss statistics
func (rc *ResultCache) Metrics() Metrics {
	return rc.cache.Metrics()
}

// Close stops the background cleanup
func (rc *ResultCache) Close() {
	rc.cache.Close()
}

// resultKey hashes the input line. Formula lines can be long; the
// digest keeps keys at a fixed size.
func resultKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
