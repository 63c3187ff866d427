// Package config holds app wide settings unmarshalled from Viper: defaults,
// an optional config file, NUSSIFOLD_* environment variables and flags, in
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"nussifold-core/module"
	"nussifold-core/nussinov"
)

// EnvPrefix namespaces environment overrides (NUSSIFOLD_MIN_LOOP_LENGTH, ...).
const EnvPrefix = "NUSSIFOLD"

// DefaultMaxLength bounds N; the score table holds N² cells.
const DefaultMaxLength = 4000

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root-level settings struct.
type Config struct {
	// minimum j-i before two positions may pair (0 disables the check)
	MinLoopLength int `mapstructure:"min_loop_length"`

	// annotated-input symbols, each exactly one byte
	Marker    string `mapstructure:"marker"`
	Separator string `mapstructure:"separator"`
	Tracked   string `mapstructure:"tracked"`

	// longest canonical sequence accepted
	MaxLength int `mapstructure:"max_length"`

	// records folded concurrently (0 = NumCPU)
	Workers int `mapstructure:"workers"`
	// prefixes traced concurrently within one record
	PrefixWorkers int `mapstructure:"prefix_workers"`

	Output string `mapstructure:"output"`
	Header bool   `mapstructure:"header"`
	Pretty bool   `mapstructure:"pretty"`
	Family bool   `mapstructure:"family"`

	LogLevel string `mapstructure:"log_level"`
	Quiet    bool   `mapstructure:"quiet"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MinLoopLength: nussinov.DefaultMinLoopLength,
		Marker:        "*",
		Separator:     "l",
		Tracked:       "b",
		MaxLength:     DefaultMaxLength,
		Workers:       0,
		PrefixWorkers: 1,
		Output:        "text",
		LogLevel:      "info",
	}
}

// SetDefaults registers every key with v so environment lookups and
// Unmarshal see the full key set.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("min_loop_length", d.MinLoopLength)
	v.SetDefault("marker", d.Marker)
	v.SetDefault("separator", d.Separator)
	v.SetDefault("tracked", d.Tracked)
	v.SetDefault("max_length", d.MaxLength)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("prefix_workers", d.PrefixWorkers)
	v.SetDefault("output", d.Output)
	v.SetDefault("header", d.Header)
	v.SetDefault("pretty", d.Pretty)
	v.SetDefault("family", d.Family)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("quiet", d.Quiet)
}

// Load resolves a Config from v. path, when set, names a YAML/TOML/JSON
// config file; flags must already be bound to v by the caller.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the symbol settings and numeric bounds.
func (c Config) Validate() error {
	for _, f := range []struct{ name, val string }{
		{"marker", c.Marker}, {"separator", c.Separator}, {"tracked", c.Tracked},
	} {
		if len(f.val) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidConfig, f.name, f.val)
		}
	}
	if isLetter(c.Marker[0]) {
		return fmt.Errorf("%w: marker %q must not be a letter", ErrInvalidConfig, c.Marker)
	}
	if c.Marker == c.Separator {
		return fmt.Errorf("%w: marker and separator are both %q", ErrInvalidConfig, c.Marker)
	}
	if !isLetter(c.Tracked[0]) {
		return fmt.Errorf("%w: tracked %q must be a letter", ErrInvalidConfig, c.Tracked)
	}
	if c.MinLoopLength < 0 {
		return fmt.Errorf("%w: min_loop_length must be >= 0", ErrInvalidConfig)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: max_length must be >= 0", ErrInvalidConfig)
	}
	if c.Workers < 0 || c.PrefixWorkers < 0 {
		return fmt.Errorf("%w: worker counts must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// FoldOptions maps the settings onto the folding core. The separator never pairs.
func (c Config) FoldOptions() nussinov.Options {
	return nussinov.Options{
		MinLoopLength: c.MinLoopLength,
		Excluded:      c.Separator,
		Workers:       c.PrefixWorkers,
	}
}

// ModuleOptions maps the symbol settings onto preprocessing and projection.
func (c Config) ModuleOptions() module.Options {
	return module.Options{Marker: c.Marker[0], Separator: c.Separator[0], Tracked: c.Tracked[0]}
}

func isLetter(b byte) bool { return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') }
