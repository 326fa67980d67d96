// Package envget provides lazy getters for environment-derived
// configuration. Each getter resolves its variable once, on first call,
// and returns the same value for the rest of the process. Before any
// getter resolves, an optional .env file is loaded exactly once via
// godotenv; variables already present in the environment win.
package envget

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/vormadev/lazykit/lazyget"
)

var dotenv lazyget.Cache[struct{}]

// Load ensures the one-time .env load has happened. Getters call it
// automatically; call it directly only when reading the environment
// through other means before any getter has run. A missing .env file
// is fine.
func Load() {
	dotenv.Get(func() struct{} {
		_ = godotenv.Load()
		return struct{}{}
	})
}

// String returns a lazy getter for the named variable. The environment
// is consulted once, on the getter's first call.
func String(name string) func() string {
	return lazyget.New(func() string {
		Load()
		return os.Getenv(name)
	})
}

// StringOr is String with a fallback for unset or empty values.
func StringOr(name, fallback string) func() string {
	return lazyget.New(func() string {
		Load()
		if v := os.Getenv(name); v != "" {
			return v
		}
		return fallback
	})
}

// Bool returns a lazy getter for the named variable parsed with
// strconv.ParseBool. Unset or unparseable values read as false.
func Bool(name string) func() bool {
	return lazyget.New(func() bool {
		Load()
		v, err := strconv.ParseBool(os.Getenv(name))
		if err != nil {
			return false
		}
		return v
	})
}

// Int returns a lazy getter for the named variable parsed as an int,
// with a fallback for unset or unparseable values.
func Int(name string, fallback int) func() int {
	return lazyget.New(func() int {
		Load()
		v, err := strconv.Atoi(os.Getenv(name))
		if err != nil {
			return fallback
		}
		return v
	})
}

// Duration returns a lazy getter for the named variable parsed with
// time.ParseDuration, with a fallback for unset or unparseable values.
func Duration(name string, fallback time.Duration) func() time.Duration {
	return lazyget.New(func() time.Duration {
		Load()
		v, err := time.ParseDuration(os.Getenv(name))
		if err != nil {
			return fallback
		}
		return v
	})
}
