package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvConfigDir = "B16APPLY_CONFIG_DIR"
	EnvRoot      = "B16APPLY_ROOT"
	EnvSchemes   = "B16APPLY_SCHEMES"
)

// Dir is where settings.toml or settings.json live. B16APPLY_CONFIG_DIR wins
// over the platform config directory.
func Dir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvConfigDir)); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".", ".b16apply")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "b16apply")
}

// SchemeDirs lists the directories searched for named schemes, in order.
func SchemeDirs(s Settings) []string {
	dirs := []string{s.SchemesDir}
	if env := os.Getenv(EnvSchemes); env != "" {
		dirs = append(filepath.SplitList(env), dirs...)
	}
	dirs = append(dirs, filepath.Join(Dir(), "schemes"))
	return dedupeNonEmpty(dirs)
}
