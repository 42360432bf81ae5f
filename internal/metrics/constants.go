package metrics

// ============================================================================
// Metric Names
// ============================================================================

// GUI layer metric names
const (
	MetricNameItemsRegistered   = "menuforge_items_registered_total"
	MetricNameItemsUnregistered = "menuforge_items_unregistered_total"
	MetricNameItemsRendered     = "menuforge_items_rendered_total"
	MetricNameUpdateTicks       = "menuforge_update_ticks_total"
	MetricNamePlaceholderErrors = "menuforge_placeholder_errors_total"
)

// Skull profile metric names
const (
	MetricNameProfileCacheHits   = "menuforge_skull_profile_cache_hits_total"
	MetricNameProfileCacheMisses = "menuforge_skull_profile_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// GUI layer metric help text
const (
	HelpTextItemsRegistered   = "Total number of GUI items registered into layers"
	HelpTextItemsUnregistered = "Total number of GUI items removed from layers"
	HelpTextItemsRendered     = "Total number of GUI item renders"
	HelpTextUpdateTicks       = "Total number of layer auto-update ticks"
	HelpTextPlaceholderErrors = "Total number of placeholder engine failures swallowed at render"
)

// Skull profile metric help text
const (
	HelpTextProfileCacheHits   = "Total number of skull profile cache hits"
	HelpTextProfileCacheMisses = "Total number of skull profile cache misses (resolutions performed)"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelStrategy = "strategy"
)

// Registration strategy label values
const (
	StrategyReplace = "replace"
	StrategyOverlay = "overlay"
)
