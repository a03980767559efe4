package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the path to the user's config directory for the tool,
// creating it when missing.
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Error getting user home directory: %v", err)
	}
	dir := filepath.Join(homeDir, "."+strings.ToLower(AppName))
	if err := os.MkdirAll(dir, 0700); err != nil {
		log.Fatalf("Error creating config directory: %v", err)
	}
	return dir
}

// SettingsDBPath returns the path of the durable settings database.
func SettingsDBPath() string {
	return filepath.Join(Dir(), SettingsDBFile)
}
