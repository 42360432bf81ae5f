package gui

// =============================================================================
// Marker Constants
// =============================================================================

const (
	// MarkerTag is the metadata tag stamped onto materialized menu items so
	// click dispatch can refuse to let the viewer take them out of the menu
	MarkerTag = "menuforge:marker"

	// MarkerTagValue is the value stored under MarkerTag
	MarkerTagValue = "1"
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgPlaceholderNameFailed = "Placeholder processing failed for display name, using unprocessed text"
	LogMsgPlaceholderLoreFailed = "Placeholder processing failed for lore, using unprocessed text"
)
