// Package config provides the configuration management for the polymul
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments and coefficient lists, and performs
// validation on the configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/poly"
)

const (
	// EnvPrefix is the prefix for all environment variables used by polymul.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "POLYMUL_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultA is the default first operand, the demo polynomial
	// 3x³+4x²−x+7 as a coefficient list from lowest degree to highest.
	DefaultA = "7,-1,4,3"
	// DefaultB is the default second operand, 7x³−4x²−2x+3.
	DefaultB = "3,-2,-4,7"
	// DefaultTimeout is the default multiplication timeout.
	DefaultTimeout = 1 * time.Minute
	// DefaultAlgo is the default algorithm selection.
	DefaultAlgo = "all"
	// DefaultTolerance is the default per-coefficient tolerance used when
	// cross-validating algorithms.
	DefaultTolerance = 1e-6
	// DefaultPort is the default server port.
	DefaultPort = "8080"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the operand coefficients to presentation options.
type AppConfig struct {
	// A is the raw comma-separated coefficient list of the first operand,
	// ordered from the lowest degree term to the highest.
	A string
	// B is the raw coefficient list of the second operand.
	B string
	// CoeffsA is the parsed form of A.
	CoeffsA []float64
	// CoeffsB is the parsed form of B.
	CoeffsB []float64
	// Algo specifies the algorithm to use ("all", "fft", "naive").
	Algo string
	// Timeout sets the maximum duration for the multiplication.
	Timeout time.Duration
	// Tolerance is the per-coefficient tolerance for cross-algorithm
	// result comparison.
	Tolerance float64
	// Parallel, if true, runs the FFT path's two forward transforms
	// concurrently.
	Parallel bool
	// Verbose, if true, displays the full coefficient list of the result.
	Verbose bool
	// Details, if true, provides a detailed report including memory metrics.
	Details bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses progress bars, banners, and informational messages.
	Quiet bool
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// TUI, if true, starts the interactive dashboard.
	TUI bool
}

// ToMultiplyOptions converts the application configuration into poly.Options
// for use by the multipliers.
func (c AppConfig) ToMultiplyOptions() poly.Options {
	return poly.Options{ParallelTransforms: c.Parallel}
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that numerical values are within valid ranges and that the
// chosen algorithm is supported.
//
// Parameters:
//   - availableAlgos: A slice of strings listing the valid algorithm names
//     (e.g., ["fft", "naive"]).
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Tolerance <= 0 {
		return apperrors.NewConfigError("tolerance must be strictly positive: %g", c.Tolerance)
	}
	if len(c.CoeffsA) == 0 {
		return apperrors.NewConfigError("operand 'a' must have at least one coefficient")
	}
	if len(c.CoeffsB) == 0 {
		return apperrors.NewConfigError("operand 'b' must have at least one coefficient")
	}
	isAlgoAvailable := false
	for _, a := range availableAlgos {
		if a == c.Algo {
			isAlgoAvailable = true
			break
		}
	}
	if c.Algo != "all" && !isAlgoAvailable {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	return nil
}

// ParseCoefficients parses a comma-separated list of real coefficients,
// ordered from the lowest degree term to the highest. Whitespace around
// entries is ignored. NaN and infinities are rejected: the transform
// machinery has no meaningful behavior for them.
//
// Parameters:
//   - s: The raw coefficient list, e.g. "7,-1,4,3".
//
// Returns:
//   - []float64: The parsed coefficients.
//   - error: A ConfigError if any entry fails to parse.
func ParseCoefficients(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	coeffs := make([]float64, 0, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, apperrors.NewConfigError("invalid coefficient %q at position %d", strings.TrimSpace(part), i)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, apperrors.NewConfigError("coefficient at position %d must be finite", i)
		}
		coeffs = append(coeffs, v)
	}
	return coeffs, nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// and handles the parsing process. After parsing, it resolves environment
// variable overrides, parses the coefficient lists, and validates the
// resulting configuration.
//
// The function is designed to be testable by allowing the input arguments
// and output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//   - availableAlgos: A slice of valid algorithm names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Algorithm to use: 'all' (default) or one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.StringVar(&config.A, "a", DefaultA, "Coefficients of the first operand, lowest degree first (comma-separated).")
	fs.StringVar(&config.B, "b", DefaultB, "Coefficients of the second operand, lowest degree first (comma-separated).")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the multiplication.")
	fs.Float64Var(&config.Tolerance, "tolerance", DefaultTolerance, "Per-coefficient tolerance for cross-algorithm comparison.")
	fs.BoolVar(&config.Parallel, "parallel", true, "Run the FFT path's forward transforms concurrently.")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full coefficient list of the result.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&config.Details, "d", false, "Display performance details and result metadata.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive dashboard.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)

	var err error
	if config.CoeffsA, err = ParseCoefficients(config.A); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	if config.CoeffsB, err = ParseCoefficients(config.B); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}

	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
