package menu

// =============================================================================
// Definition Constants
// =============================================================================

const (
	// BaseHeadPrefix marks a material value as a base64 skull texture
	BaseHeadPrefix = "basehead-"

	// DefaultMenuSize is used when a definition omits the size
	DefaultMenuSize = 54

	// DefaultButtonAmount is used when a button omits the amount
	DefaultButtonAmount = 1
)

// =============================================================================
// Error Messages
// =============================================================================

const (
	ErrMsgReadDefinitionFailed  = "failed to read menu definition: %w"
	ErrMsgParseDefinitionFailed = "failed to parse menu definition: %w"
	ErrMsgDefinitionNil         = "definition is nil"
	ErrMsgNoButtonsDefined      = "no buttons defined"
	ErrMsgDuplicateButtonKey    = "duplicate button key"
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgMenuLoaded       = "Menu definition loaded"
	LogMsgButtonRegistered = "Button registered"
)
