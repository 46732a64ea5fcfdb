// Package config handles tool configuration loading from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/winform/designer"
)

// DefaultFile is looked up in the working directory when no explicit
// path is given.
const DefaultFile = ".winform.toml"

// Config is the root configuration structure.
type Config struct {
	// Dialects maps extra file extensions to a dialect name, e.g.
	// ".designer" = "csharp". The built-in .cs/.vb mapping always applies.
	Dialects map[string]string `toml:"dialects"`
	Lint     LintConfig        `toml:"lint"`
	UI       UIConfig          `toml:"ui"`
}

// LintConfig holds lint rule toggles.
type LintConfig struct {
	// Disabled lists rule names to suppress, e.g. "handler-naming".
	Disabled []string `toml:"disabled"`
}

// Disables reports whether a rule name is suppressed.
func (l LintConfig) Disables(rule string) bool {
	for _, r := range l.Disabled {
		if r == rule {
			return true
		}
	}
	return false
}

// UIConfig holds preview server settings.
type UIConfig struct {
	Addr string `toml:"addr"`
}

// AddrOrDefault returns the configured listen address or ":8080".
func (u UIConfig) AddrOrDefault() string {
	if u.Addr == "" {
		return ":8080"
	}
	return u.Addr
}

// Load reads configuration from a TOML file. An empty path falls back
// to DefaultFile in the working directory; a missing default file is
// not an error, an explicitly named missing file is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Dialects: make(map[string]string),
	}

	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	for ext, name := range c.Dialects {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("dialects: extension %q must start with a dot", ext)
		}
		if _, ok := dialectByName(name); !ok {
			return fmt.Errorf("dialects.%s=%q is not a known dialect (csharp, vbnet)", ext, name)
		}
	}
	return nil
}

// DialectFor resolves the dialect for a file path, consulting the
// configured extension map before the built-in convention.
func (c *Config) DialectFor(path string) (designer.Dialect, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if name, ok := c.Dialects[ext]; ok {
		if d, ok := dialectByName(name); ok {
			return d, true
		}
	}
	return designer.DialectForPath(path)
}

func dialectByName(name string) (designer.Dialect, bool) {
	switch strings.ToLower(name) {
	case "csharp", "cs", "c#":
		return designer.DialectCSharp, true
	case "vbnet", "vb":
		return designer.DialectVB, true
	}
	return designer.DialectCSharp, false
}
