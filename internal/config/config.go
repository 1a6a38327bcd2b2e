// Package config loads the optional tempfile configuration file.
//
// The tool runs fine without one; the file only supplies defaults for
// flags the caller left unset, plus the create retry bound, which has no
// flag on purpose.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rotisserie/eris"
)

// Defaults mirror the generation flags. A flag given on the command line
// always wins over its entry here.
type Defaults struct {
	Directory string `toml:"directory"` // as --directory
	Prefix    string `toml:"prefix"`    // as --prefix
	Suffix    string `toml:"suffix"`    // as --suffix
	Mode      string `toml:"mode"`      // octal string, as --mode
}

// CreateSettings tune the create loop itself.
type CreateSettings struct {
	// MaxAttempts bounds the number of candidate names tried before giving
	// up. Zero means the built-in bound.
	MaxAttempts int `toml:"max_attempts"`
}

type Config struct {
	Defaults Defaults       `toml:"defaults"`
	Create   CreateSettings `toml:"create"`

	// Path the configuration was read from; empty when no file existed.
	path string
}

// FilePath returns where the configuration was loaded from, or "" when the
// built-in defaults are in effect.
func (c *Config) FilePath() string { return c.path }

// DefaultPath returns the location consulted when no --config is given:
// $TEMPFILE_CONFIG if set, otherwise tempfile/config.toml under the
// user configuration directory. Empty when neither can be determined.
func DefaultPath() string {
	if p := os.Getenv("TEMPFILE_CONFIG"); p != "" {
		return p
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "tempfile", "config.toml")
}

// Load reads the configuration from path. An empty path means the default
// location, where a missing file is fine; a file named explicitly must
// exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, eris.Wrapf(err, "config file %s", path)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, eris.Wrapf(err, "decode config %s", path)
	}
	if cfg.Create.MaxAttempts < 0 {
		return nil, eris.Errorf("config file %s: max_attempts must not be negative", path)
	}

	cfg.Defaults.Directory = expandPath(cfg.Defaults.Directory)
	cfg.path = path
	return cfg, nil
}

// expandPath expands a leading ~ to the user's home directory. The ~user
// form is left alone.
func expandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) > 1 && path[1] != '/' && path[1] != '\\' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
