package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents a group of named values structured
// by tree type.
//
// Sub-trees are named configuration sub-sections,
// leaves are named configuration values.
// Names are of string type.
type Config struct {
	v *viper.Viper

	path []string
}

const separator = "."

// Prefix of ENV variables overriding configuration values.
const envPrefix = "blocks_tree"

// New creates a new Config instance.
//
// If file option is provided (WithConfigFile),
// configuration values are read from it.
// Otherwise, Config is a degenerate tree.
func New(opts ...Option) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(separator, "_"))

	o := defaultOpts()
	for i := range opts {
		opts[i](o)
	}

	if o.path != "" {
		v.SetConfigFile(o.path)

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		v: v,
	}, nil
}

// Sub returns subsection of the Config by name.
func (x *Config) Sub(name string) *Config {
	return &Config{
		v:    x.v,
		path: append(x.path, name),
	}
}

// Value returns configuration value by name.
//
// Result can be casted to a particular type
// via corresponding function (e.g. StringSafe).
func (x *Config) Value(name string) any {
	return x.v.Get(strings.Join(append(x.path, name), separator))
}
