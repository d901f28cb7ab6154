package document

import (
	"io"
)

// Config holds user options for a Document
type Config struct {
	AutosaveThreshold int       // Edits between two autosaves (<= 0 disables autosave)
	ShadowSuffix      string    // Appended to the boxfile name to form the autosave path
	Debug             bool      // Log every edit and replay
	LogWarnings       bool      // Whether to print warnings
	Logger            io.Writer // Custom logger for warnings (nil = stdout)
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		AutosaveThreshold: 10,
		ShadowSuffix:      ".autosave",
		Debug:             false,
		LogWarnings:       true,
		Logger:            nil, // stdout
	}
}
