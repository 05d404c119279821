package main

import (
	"os"
	"path/filepath"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// suiConfigPath returns the path of a file in the Sui client configuration
// directory.
func suiConfigPath(name string) string {
	return filepath.Join(os.Getenv("HOME"), ".sui", "sui_config", name)
}
