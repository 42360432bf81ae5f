package visual

import (
	"encoding/base64"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/MenuForge_Go/internal/logger"
	"github.com/osse101/MenuForge_Go/item"
	"github.com/osse101/MenuForge_Go/profile"
	"github.com/osse101/MenuForge_Go/scheduler"
)

// SkullCache caches skull wrappers by their base64 texture payload so that
// repeated menu definitions referencing the same head build it once. Get
// always hands out a clone.
type SkullCache struct {
	cache    *lru.Cache[string, *Wrapper]
	resolver *profile.Resolver
}

// NewSkullCache creates a cache bounded to size entries. A size below 1
// falls back to DefaultSkullCacheSize; a nil resolver uses the process-wide
// one.
func NewSkullCache(size int, resolver *profile.Resolver) *SkullCache {
	if size < 1 {
		size = DefaultSkullCacheSize
	}
	if resolver == nil {
		resolver = profile.Default()
	}
	cache, _ := lru.New[string, *Wrapper](size)
	return &SkullCache{cache: cache, resolver: resolver}
}

// Get returns a clone of the cached skull wrapper for the payload, building
// and caching it on first use. Invalid payloads degrade to a plain player
// head; a failure never propagates to the caller.
func (c *SkullCache) Get(payload string) *Wrapper {
	if cached, ok := c.cache.Get(payload); ok {
		return cached.Clone()
	}

	w, err := c.build(payload)
	if err != nil {
		logger.Warn(LogMsgSkullCreateFailed, "error", err)
		w = NewWrapperOf(item.MaterialPlayerHead, 1)
	}
	c.cache.Add(payload, w)
	return w.Clone()
}

func (c *SkullCache) build(payload string) (*Wrapper, error) {
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return nil, err
	}

	stack := item.NewStack(item.MaterialPlayerHead, 1)
	stack.Meta().SetSkullProfile(c.resolver.Resolve(payload))

	w := NewWrapper(stack)
	w.SetBase64Skin(payload)
	return w, nil
}

// SkullFactory builds skull wrappers for one payload off the tick context.
type SkullFactory struct {
	payload string
	cache   *SkullCache
}

// NewSkullFactory binds a factory to a payload and cache.
func NewSkullFactory(payload string, cache *SkullCache) *SkullFactory {
	return &SkullFactory{payload: payload, cache: cache}
}

// Payload returns the bound base64 payload.
func (f *SkullFactory) Payload() string {
	return f.payload
}

// Create builds the wrapper synchronously.
func (f *SkullFactory) Create() *Wrapper {
	return f.cache.Get(f.payload)
}

// CreateAsync builds the wrapper on the async context and posts it back onto
// the tick context through fn.
func (f *SkullFactory) CreateAsync(sched scheduler.Scheduler, fn func(*Wrapper)) {
	sched.RunAsync(func() {
		w := f.cache.Get(f.payload)
		sched.Run(func() {
			fn(w)
		})
	})
}
