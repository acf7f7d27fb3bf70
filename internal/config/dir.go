// Package config locates the global configuration directory for tiny.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the directory under the platform config root.
const appName = "tiny"

// Dir returns the tiny configuration directory.
//
// Resolution:
//   - $TINY_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/tiny if set
//   - %AppData%/tiny on Windows
//   - ~/.config/tiny elsewhere
//
// Returns "" when no home directory can be determined.
func Dir() string {
	if dir := os.Getenv("TINY_CONFIG_HOME"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// EnvFile returns the global env file path, or "" if Dir is unknown.
func EnvFile() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "env")
}
