package config

// Default values applied when neither the config file nor the
// environment overrides them.
const (
	// DefaultOutput is the default report format.
	DefaultOutput = "pretty"

	// DefaultLogLevel is the default file log level.
	DefaultLogLevel = "info"
)
