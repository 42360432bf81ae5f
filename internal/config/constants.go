package config

const (
	// Configuration file paths
	ConfigPathDefaultMenu = "configs/menus/main.json"
)

const (
	// Logging defaults
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "menuforge"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	// Scheduler defaults
	DefaultTickIntervalMs = 50
	DefaultAsyncWorkers   = 2

	// DefaultRunTicks is how long the demo loop runs before shutting down
	DefaultRunTicks = 100
)
