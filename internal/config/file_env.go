package config

import (
	"os"
	"strings"
)

// GetEnvOrFile retrieves a value with multiple fallback sources.
// Priority:
//  1. Direct environment variable (e.g., GREETING_FORMAT)
//  2. File path from _FILE environment variable (e.g., GREETING_FORMAT_FILE)
//  3. Default value
//
// File contents have surrounding whitespace trimmed, which lets a template be
// mounted as a config file or Docker secret.
func GetEnvOrFile(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}

	if filePath := os.Getenv(envVar + "_FILE"); filePath != "" {
		if data, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(data))
		}
	}

	return defaultValue
}
