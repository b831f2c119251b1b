package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. the path passed in (from the --config flag), returned as-is so a missing file is reported
// 2. SIDEDIFF_CONFIG_PATH environment variable
// 3. sidediff.yaml, sidediff.yml, sidediff.json in the current working directory
// An empty result means no config file; defaults apply.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		return configFilePathFlag
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		return envPath
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for _, file := range DefaultConfigFiles {
		path := filepath.Join(cwd, file)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// Helper function to check if a file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
