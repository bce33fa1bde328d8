// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package repl

import (
	"github.com/BurntSushi/toml"
)

// Config holds the shell settings.
type Config struct {
	Prompt       string `toml:"prompt"`        // Input prompt.
	MaxSteps     int    `toml:"max_steps"`     // Step budget for .run; 0 is unlimited.
	HistoryLimit int    `toml:"history_limit"` // History length; 0 is unlimited.
	Verbose      bool   `toml:"verbose"`       // Trace machine execution.
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Prompt:   ">>> ",
		MaxSteps: 1 << 20,
	}
}

// LoadConfig reads a TOML configuration file over the defaults.
func LoadConfig(path string) (cfg Config, err error) {
	cfg = DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return
	}

	err = cfg.check(md)

	return
}

// ParseConfig decodes TOML configuration text over the defaults.
func ParseConfig(text string) (cfg Config, err error) {
	cfg = DefaultConfig()

	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return
	}

	err = cfg.check(md)

	return
}

// check rejects keys that do not map to a Config field, and negative
// limits.
func (cfg *Config) check(md toml.MetaData) (err error) {
	keys := md.Undecoded()
	if len(keys) > 0 {
		err = ErrConfigKey(keys[0].String())
		return
	}

	switch {
	case cfg.MaxSteps < 0:
		err = ErrConfigValue{Key: "max_steps", Value: cfg.MaxSteps}
	case cfg.HistoryLimit < 0:
		err = ErrConfigValue{Key: "history_limit", Value: cfg.HistoryLimit}
	}

	return
}
