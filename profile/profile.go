// Package profile resolves skull (player-head) texture profiles from base64
// texture payloads. Resolution results are cached process-wide so repeated
// use of the same texture pays the construction cost once.
package profile

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/google/uuid"

	"github.com/osse101/MenuForge_Go/internal/metrics"
)

// Profile describes a resolved skull texture: a stable identity plus the raw
// base64 texture payload the client renders. Profiles are immutable once
// resolved and safe to share between items.
type Profile struct {
	ID       uuid.UUID
	Name     string
	Textures string
}

// skullNamespace seeds the deterministic profile IDs so the same base64
// payload always yields the same profile identity.
var skullNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("menuforge.skull"))

// Resolver builds and caches texture profiles keyed by their base64 payload.
type Resolver struct {
	cache  *lru.Cache[string, *Profile]
	misses atomic.Int64
}

// NewResolver creates a resolver with a bounded cache of the given size.
// Sizes below 1 fall back to DefaultCacheSize.
func NewResolver(size int) *Resolver {
	if size < 1 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[string, *Profile](size)
	return &Resolver{cache: cache}
}

// Resolve returns the profile for a base64 texture payload, building it on
// first use. An empty payload resolves to nil.
func (r *Resolver) Resolve(base64 string) *Profile {
	if base64 == "" {
		return nil
	}
	if cached, ok := r.cache.Get(base64); ok {
		metrics.ProfileCacheHits.Inc()
		return cached
	}

	p := &Profile{
		ID:       uuid.NewSHA1(skullNamespace, []byte(base64)),
		Name:     ProfileName,
		Textures: base64,
	}
	r.cache.Add(base64, p)
	r.misses.Add(1)
	metrics.ProfileCacheMisses.Inc()
	return p
}

// Misses returns how many resolutions actually built a profile, i.e. how
// often Resolve was called with a payload not yet in the cache.
func (r *Resolver) Misses() int64 {
	return r.misses.Load()
}

var (
	defaultResolver     *Resolver
	defaultResolverOnce sync.Once
)

// Default returns the process-wide resolver shared by items that were not
// given their own.
func Default() *Resolver {
	defaultResolverOnce.Do(func() {
		defaultResolver = NewResolver(DefaultCacheSize)
	})
	return defaultResolver
}
