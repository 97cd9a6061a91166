// Package config provides the configuration management for the fibseq
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments and environment overrides, and
// performs validation on the configuration values.
package config

import (
	"flag"
	"io"
	"math/big"
	"strings"
	"time"

	apperrors "github.com/agbru/fibseq/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by fibseq.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "FIBSEQ_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultN is the default Fibonacci index to evaluate. Chosen so that even
	// the naive recursive baseline completes in well under a second.
	DefaultN uint64 = 30
	// DefaultCount is the default sequence length for sequence mode.
	DefaultCount = 10
	// DefaultTimeout is the default evaluation timeout.
	DefaultTimeout = 1 * time.Minute
	// DefaultAlgo is the default strategy selection.
	DefaultAlgo = "all"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags and environment variables.
type AppConfig struct {
	// N is the index of the Fibonacci number to be evaluated.
	N uint64
	// Count is the number of leading sequence values to print in sequence mode.
	Count int
	// SequenceMode selects sequence printing instead of single-index
	// evaluation. It is enabled by passing the -count flag (any value).
	SequenceMode bool
	// Check holds the decimal candidate for a membership test; empty disables
	// check mode. A string rather than an integer so candidates of any
	// magnitude are accepted.
	Check string
	// Algo specifies the strategy to use ("all", "recursive", "iterative", ...).
	Algo string
	// Timeout sets the maximum duration for the evaluation.
	Timeout time.Duration
	// Verbose, if true, displays the full value without truncation.
	Verbose bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses spinners, banners, and informational messages.
	Quiet bool
	// ShowValue enables the calculated value display when true (disabled by
	// default; set with -c/-calculate).
	ShowValue bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
}

// CheckValue parses the Check field into a big.Int.
// Only meaningful after Validate succeeded; returns nil when check mode is
// disabled.
func (c AppConfig) CheckValue() *big.Int {
	if c.Check == "" {
		return nil
	}
	v, ok := new(big.Int).SetString(c.Check, 10)
	if !ok {
		return nil
	}
	return v
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that numerical values are within valid ranges and that the chosen
// strategy is supported.
//
// Parameters:
//   - availableAlgos: A slice of strings listing the valid strategy names
//     (e.g., ["iterative", "memoized", "recursive"]).
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Check != "" {
		v, ok := new(big.Int).SetString(c.Check, 10)
		if !ok {
			return apperrors.NewConfigError("check candidate must be a decimal integer: %q", c.Check)
		}
		if v.Sign() < 0 {
			return apperrors.NewConfigError("check candidate must be non-negative: %s", c.Check)
		}
	}
	isAlgoAvailable := false
	for _, a := range availableAlgos {
		if a == c.Algo {
			isAlgoAvailable = true
			break
		}
	}
	if c.Algo != "all" && !isAlgoAvailable {
		return apperrors.NewConfigError("unrecognized strategy: '%s'. Valid strategies are: 'all' or [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// applies environment variable overrides for flags not explicitly set, and
// validates the resulting configuration.
//
// The function is designed to be testable by allowing the input arguments and
// the error writer to be injected.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for flag parsing errors and usage output.
//   - availableAlgos: The registered strategy names, for validation.
//
// Returns:
//   - AppConfig: The parsed and validated configuration.
//   - error: flag.ErrHelp if -h was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	var cfg AppConfig
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Uint64Var(&cfg.N, "n", DefaultN, "index of the Fibonacci number to evaluate (0-indexed)")
	fs.IntVar(&cfg.Count, "count", DefaultCount, "print the first `count` Fibonacci numbers instead of evaluating a single index")
	fs.StringVar(&cfg.Check, "check", "", "test whether the given non-negative integer is a Fibonacci number")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, "strategy to use ('all' runs every registered strategy and cross-checks them)")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum duration for the evaluation")
	fs.BoolVar(&cfg.Verbose, "v", false, "display the full value without truncation (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "display the full value without truncation")
	fs.BoolVar(&cfg.Quiet, "q", false, "minimal output for scripting (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "minimal output for scripting")
	fs.BoolVar(&cfg.ShowValue, "c", false, "display the calculated value (shorthand)")
	fs.BoolVar(&cfg.ShowValue, "calculate", false, "display the calculated value")
	fs.StringVar(&cfg.OutputFile, "o", "", "save the result to this file path (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", "", "save the result to this file path")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable color output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Sequence mode is selected by the presence of -count, not its value, so
	// "-count 0" legitimately prints an empty sequence.
	cfg.SequenceMode = isFlagSetAny(fs, "count")

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
