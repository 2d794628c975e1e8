// Package config parses and validates the application configuration.
//
// Values are resolved with the priority: command-line flags > FLOWSAMPLE_*
// environment variables > YAML configuration file > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	apperrors "github.com/agbru/flowsample/internal/errors"
	"github.com/agbru/flowsample/internal/logging"
	"github.com/agbru/flowsample/internal/ui"
)

// EnvPrefix is the prefix of every environment variable read by the application.
const EnvPrefix = "FLOWSAMPLE_"

// AlgoAll selects the concurrent cross-check of every Fibonacci strategy.
const AlgoAll = "all"

// MaxRecursiveN bounds the input of the exponential recursive strategy.
const MaxRecursiveN = 40

// MaxMemoN bounds the memo strategy to the largest input whose result fits
// in an int64.
const MaxMemoN = 92

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// A and B are the comparator operands.
	A, B int
	// Values is the sequence summed by the summation step.
	Values []int
	// ListSize is the number of nodes appended; node i holds i*ListStep.
	ListSize int
	// ListStep is the multiplier applied to each node index.
	ListStep int
	// MaxNodes caps the node arena (0 = unbounded).
	MaxNodes int
	// N is the Fibonacci input.
	N int
	// FibAlgo names the Fibonacci strategy, or AlgoAll.
	FibAlgo string
	// Countdown is the countdown start.
	Countdown int
	// Details prints the step summary after the demonstration.
	Details bool
	// MetricsFile receives the Prometheus text exposition when non-empty.
	MetricsFile string
	// ConfigFile is the optional YAML configuration file.
	ConfigFile string
	// NoColor disables colored output.
	NoColor bool
	// Verbose enables debug logging on stderr.
	Verbose bool
	// LogFormat selects console or JSON log lines.
	LogFormat string
	// Theme names the color theme of the summary.
	Theme string
}

// Default returns the configuration that reproduces the fixed demonstration.
func Default() AppConfig {
	return AppConfig{
		A:         10,
		B:         20,
		Values:    []int{1, 2, 3, 4, 5},
		ListSize:  5,
		ListStep:  10,
		N:         6,
		FibAlgo:   "recursive",
		Countdown: 5,
		LogFormat: logging.FormatConsole,
		Theme:     "dark",
	}
}

// intList is a flag.Value holding a comma separated list of integers.
type intList struct {
	values *[]int
}

func (l intList) String() string {
	if l.values == nil {
		return ""
	}
	return formatIntList(*l.values)
}

func (l intList) Set(s string) error {
	parsed, err := parseIntList(s)
	if err != nil {
		return err
	}
	*l.values = parsed
	return nil
}

func parseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatIntList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// ParseConfig parses command-line arguments into an AppConfig, then applies
// the configuration file and environment overrides for every flag that was
// not set explicitly, and validates the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The arguments, without the program name.
//   - errWriter: Destination for usage and parse errors.
//   - availableAlgos: The registered Fibonacci strategy names.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := Default()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	// Parse errors are returned as ConfigError and reported by the caller;
	// only the usage text is written here.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		fs.SetOutput(errWriter)
		defer fs.SetOutput(io.Discard)
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\nRuns the control-flow and data-flow demonstrations.\n\nOptions:\n", programName)
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.A, "a", cfg.A, "First comparator operand.")
	fs.IntVar(&cfg.B, "b", cfg.B, "Second comparator operand.")
	fs.Var(intList{&cfg.Values}, "values", "Comma separated integers to sum.")
	fs.IntVar(&cfg.ListSize, "list-size", cfg.ListSize, "Number of list nodes to append.")
	fs.IntVar(&cfg.ListStep, "list-step", cfg.ListStep, "Multiplier applied to each node index.")
	fs.IntVar(&cfg.MaxNodes, "max-nodes", cfg.MaxNodes, "Node storage capacity (0 = unbounded).")
	fs.IntVar(&cfg.N, "n", cfg.N, "Fibonacci input.")
	fs.StringVar(&cfg.FibAlgo, "fib-algo", cfg.FibAlgo, fmt.Sprintf("Fibonacci strategy: %s or %q.", strings.Join(availableAlgos, ", "), AlgoAll))
	fs.IntVar(&cfg.Countdown, "countdown", cfg.Countdown, "Countdown start.")
	fs.BoolVar(&cfg.Details, "details", cfg.Details, "Print a step timing and memory summary.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this file.")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML configuration file.")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output.")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Shorthand for -verbose.")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging on stderr.")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, fmt.Sprintf("Log format on stderr: %s.", strings.Join(logging.Formats, ", ")))
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, fmt.Sprintf("Summary color theme: %s.", strings.Join(ui.ThemeNames, ", ")))
	fs.Bool("version", false, "Print version information and exit.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	path := cfg.ConfigFile
	if path == "" {
		path = getEnvString("CONFIG", "")
	}
	if path != "" {
		cfg.ConfigFile = path
		values, err := loadFile(path)
		if err != nil {
			return cfg, apperrors.NewConfigError("%v", err)
		}
		applyFileOverrides(&cfg, values, fs)
	}
	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistent values.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.ListSize < 0 {
		return apperrors.NewConfigError("list-size must be >= 0, got %d", c.ListSize)
	}
	if c.MaxNodes < 0 {
		return apperrors.NewConfigError("max-nodes must be >= 0, got %d", c.MaxNodes)
	}
	if c.FibAlgo != AlgoAll && !slices.Contains(availableAlgos, c.FibAlgo) {
		return apperrors.NewConfigError("unknown fib-algo %q (available: %s, %s)", c.FibAlgo, strings.Join(availableAlgos, ", "), AlgoAll)
	}
	if (c.FibAlgo == "recursive" || c.FibAlgo == AlgoAll) && c.N > MaxRecursiveN {
		return apperrors.NewConfigError("n must be <= %d for the recursive strategy, got %d", MaxRecursiveN, c.N)
	}
	if c.FibAlgo == "memo" && c.N > MaxMemoN {
		return apperrors.NewConfigError("n must be <= %d for the memo strategy, got %d", MaxMemoN, c.N)
	}
	if !slices.Contains(logging.Formats, c.LogFormat) {
		return apperrors.NewConfigError("unknown log-format %q (available: %s)", c.LogFormat, strings.Join(logging.Formats, ", "))
	}
	if !slices.Contains(ui.ThemeNames, c.Theme) {
		return apperrors.NewConfigError("unknown theme %q (available: %s)", c.Theme, strings.Join(ui.ThemeNames, ", "))
	}
	return nil
}
