package profile

// Cache configuration
const (
	// DefaultCacheSize bounds the process-wide profile cache. Menus reuse a
	// small set of textures, so evictions are rare in practice.
	DefaultCacheSize = 1024
)

// Profile field values
const (
	// ProfileName is the synthetic owner name attached to resolved texture
	// profiles.
	ProfileName = "CustomHead"
)
