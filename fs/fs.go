// Package fs locates linediff's files on the local file system and caches
// results there.
package fs

import (
	"os"
	"path/filepath"
)

const appName = "linediff"

// DefaultConfigPath returns the path of the configuration file:
// $XDG_CONFIG_HOME/linediff/config.yaml, falling back to the user config
// directory.
func DefaultConfigPath() string {
	return filepath.Join(baseDir("XDG_CONFIG_HOME", os.UserConfigDir, ".config"), appName, "config.yaml")
}

// DefaultHistoryPath returns the path of the recent comparisons file in the
// user data directory ($XDG_DATA_HOME, or ~/.local/share).
func DefaultHistoryPath() string {
	return filepath.Join(baseDir("XDG_DATA_HOME", nil, filepath.Join(".local", "share")), appName, "history.jsonl")
}

// DefaultCacheDir returns the directory for cached summaries
// ($XDG_CACHE_HOME/linediff, falling back to ~/.cache/linediff).
func DefaultCacheDir() string {
	return filepath.Join(baseDir("XDG_CACHE_HOME", os.UserCacheDir, ".cache"), appName)
}

// baseDir resolves an XDG base directory. When the variable is unset it asks
// the platform (if lookup is non-nil), then the home directory, and finally
// the system temp directory.
func baseDir(env string, lookup func() (string, error), homeRel string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	if lookup != nil {
		if dir, err := lookup(); err == nil && dir != "" {
			return dir
		}
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return os.TempDir()
	}
	return filepath.Join(home, homeRel)
}
