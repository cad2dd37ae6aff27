package config

import (
	"github.com/spf13/cast"
)

// StringSafe reads configuration value
// from c by name and casts it to string.
//
// Returns "" if value can not be casted.
func StringSafe(c *Config, name string) string {
	return cast.ToString(c.Value(name))
}

// Uint64Safe reads configuration value
// from c by name and casts it to uint64.
//
// Returns 0 if value can not be casted.
func Uint64Safe(c *Config, name string) uint64 {
	return cast.ToUint64(c.Value(name))
}

// BoolSafe reads configuration value
// from c by name and casts it to bool.
//
// Returns false if value can not be casted.
func BoolSafe(c *Config, name string) bool {
	return cast.ToBool(c.Value(name))
}
