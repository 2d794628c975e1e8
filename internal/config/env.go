// This file contains the override table shared by environment variables and
// the configuration file.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// override declares a single configuration override.
// Each entry maps a key (without the FLOWSAMPLE_ prefix; lower-cased in the
// configuration file) to the CLI flag name(s) it corresponds to and a
// function that applies the raw value. Unparseable values are ignored.
type override struct {
	key   string
	flags []string
	apply func(*AppConfig, string)
}

func intOverride(key, flagName string, field func(*AppConfig) *int) override {
	return override{key, []string{flagName}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*field(c) = parsed
		}
	}}
}

func boolOverride(key string, flags []string, field func(*AppConfig) *bool) override {
	return override{key, flags, func(c *AppConfig, v string) {
		*field(c) = parseBoolEnv(v, *field(c))
	}}
}

// overrides is the declarative table of all environment and file overrides.
var overrides = []override{
	// Numeric overrides
	intOverride("A", "a", func(c *AppConfig) *int { return &c.A }),
	intOverride("B", "b", func(c *AppConfig) *int { return &c.B }),
	intOverride("LIST_SIZE", "list-size", func(c *AppConfig) *int { return &c.ListSize }),
	intOverride("LIST_STEP", "list-step", func(c *AppConfig) *int { return &c.ListStep }),
	intOverride("MAX_NODES", "max-nodes", func(c *AppConfig) *int { return &c.MaxNodes }),
	intOverride("N", "n", func(c *AppConfig) *int { return &c.N }),
	intOverride("COUNTDOWN", "countdown", func(c *AppConfig) *int { return &c.Countdown }),

	// List overrides
	{"VALUES", []string{"values"}, func(c *AppConfig, v string) {
		if parsed, err := parseIntList(v); err == nil {
			c.Values = parsed
		}
	}},

	// String overrides
	{"FIB_ALGO", []string{"fib-algo"}, func(c *AppConfig, v string) {
		c.FibAlgo = strings.TrimSpace(v)
	}},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) {
		c.MetricsFile = v
	}},
	{"LOG_FORMAT", []string{"log-format"}, func(c *AppConfig, v string) {
		c.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) {
		c.Theme = strings.ToLower(strings.TrimSpace(v))
	}},

	// Boolean overrides
	boolOverride("DETAILS", []string{"details"}, func(c *AppConfig) *bool { return &c.Details }),
	boolOverride("NO_COLOR", []string{"no-color"}, func(c *AppConfig) *bool { return &c.NoColor }),
	boolOverride("VERBOSE", []string{"v", "verbose"}, func(c *AppConfig) *bool { return &c.Verbose }),
}

// parseBoolEnv parses a boolean value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
//
// Supported environment variables (all prefixed with FLOWSAMPLE_):
//   - A, B, VALUES, LIST_SIZE, LIST_STEP, MAX_NODES, N, FIB_ALGO, COUNTDOWN,
//     DETAILS, METRICS_FILE, NO_COLOR, VERBOSE, LOG_FORMAT, THEME, CONFIG
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range overrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.key); val != "" {
			o.apply(config, val)
		}
	}
}

// applyFileOverrides applies configuration file values for any flags that
// were not explicitly set. File keys are the lower-cased override keys.
func applyFileOverrides(config *AppConfig, values map[string]string, fs *flag.FlagSet) {
	for _, o := range overrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val, ok := values[strings.ToLower(o.key)]; ok {
			o.apply(config, val)
		}
	}
}
