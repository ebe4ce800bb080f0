package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	// AllowOverlap tolerates duplicate industries in a room at a score
	// penalty instead of forbidding them.
	AllowOverlap bool `json:"allow_overlap,omitempty"`

	// TargetPerRoom is the default target assignee count per room, host
	// excluded. The reference layouts are 3 and 4 but any positive value
	// is accepted.
	TargetPerRoom int `json:"target_per_room,omitempty"`

	// SynergyTablePath points at a synergy table file used when a run
	// does not supply one inline. Empty means the built-in table.
	SynergyTablePath string `json:"synergy_table_path,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TargetPerRoom: 3,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.chamber.
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, "config.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Merge(DefaultConfig(), cfg), nil
}

// Merge overlays values from overlay onto base and returns a new Config.
// AllowOverlap comes from the overlay as-is; other fields only when set.
func Merge(base, overlay *Config) *Config {
	out := *base
	if overlay == nil {
		return &out
	}
	out.AllowOverlap = overlay.AllowOverlap
	if overlay.TargetPerRoom != 0 {
		out.TargetPerRoom = overlay.TargetPerRoom
	}
	if overlay.SynergyTablePath != "" {
		out.SynergyTablePath = overlay.SynergyTablePath
	}
	if len(overlay.DisabledTools) > 0 {
		out.DisabledTools = append([]string(nil), overlay.DisabledTools...)
	}
	return &out
}

// SynergyTable returns the table text a run should use when none is given
// inline: the configured file if set, else the built-in default table.
func (c *Config) SynergyTable() (string, error) {
	if c.SynergyTablePath == "" {
		return DefaultSynergyTable, nil
	}
	data, err := os.ReadFile(c.SynergyTablePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
