package config

const (
	// Log Defaults
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Diff Defaults
	DefaultDiffLayout         = "paired"
	DefaultDiffAlignTimeoutMs = 0

	// Input Defaults
	DefaultInputMaxSizeMB = 50

	// ConfigPathEnvVar names the environment variable holding a config file path
	ConfigPathEnvVar = "SIDEDIFF_CONFIG_PATH"
)

// DefaultConfigFiles are looked up in the working directory, in order
var DefaultConfigFiles = []string{"sidediff.yaml", "sidediff.yml", "sidediff.json"}
