package visual

// =============================================================================
// Skull Cache Constants
// =============================================================================

const (
	// DefaultSkullCacheSize bounds the process-wide base64 -> wrapper cache
	DefaultSkullCacheSize = 512
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgSkullCreateFailed = "Failed to create skull item"
)
