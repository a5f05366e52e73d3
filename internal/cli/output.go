// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatPolynomial].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/poly"
	"github.com/agbru/polymul/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full product even when it is long.
	Verbose bool
	// JSON outputs the result as a JSON document.
	JSON bool
}

// resultJSON is the serialization shape for -json output.
type resultJSON struct {
	Algorithm    string    `json:"algorithm"`
	Degree       int       `json:"degree"`
	Coefficients []float64 `json:"coefficients"`
	Polynomial   string    `json:"polynomial"`
	DurationNs   int64     `json:"duration_ns"`
	Duration     string    `json:"duration"`
}

// WriteResultToFile writes a multiplication result to a file.
//
// Parameters:
//   - product: The computed polynomial.
//   - duration: The multiplication duration.
//   - algo: The algorithm name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(product *poly.Polynomial, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.WrapError(err, "failed to create directory %q", dir)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return apperrors.WrapError(err, "failed to create output file %q", config.OutputFile)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Polynomial Multiplication Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Degree: %d\n", product.Degree())
	fmt.Fprintf(file, "# Coefficients: %d\n", product.Len())
	fmt.Fprintf(file, "\n")

	// Write the product, full form
	fmt.Fprintf(file, "%s\n", product.String())

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line result suitable for scripting.
func FormatQuietResult(product *poly.Polynomial) string {
	return product.String()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, product *poly.Polynomial) {
	fmt.Fprintln(out, FormatQuietResult(product))
}

// DisplayJSONResult encodes the result as an indented JSON document.
func DisplayJSONResult(out io.Writer, product *poly.Polynomial, duration time.Duration, algo string) error {
	doc := resultJSON{
		Algorithm:    algo,
		Degree:       product.Degree(),
		Coefficients: product.Reals(),
		Polynomial:   product.String(),
		DurationNs:   duration.Nanoseconds(),
		Duration:     duration.String(),
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// FormatPolynomial renders the product, truncating long polynomials unless
// verbose is set. Truncation keeps the leading and trailing terms so the
// dominant and constant coefficients stay visible.
func FormatPolynomial(product *poly.Polynomial, verbose bool) string {
	full := product.String()
	if verbose || product.Len() <= CoefficientDisplayLimit {
		return full
	}
	terms := strings.Fields(full)
	if len(terms) <= 2*DisplayEdges {
		return full
	}
	head := strings.Join(terms[:DisplayEdges], " ")
	tail := strings.Join(terms[len(terms)-DisplayEdges:], " ")
	return head + " ... " + tail
}

// DisplayResultWithConfig displays a result with the given output configuration.
// This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - product: The computed polynomial.
//   - duration: The multiplication duration.
//   - algo: The algorithm name.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, product *poly.Polynomial, duration time.Duration, algo string, config OutputConfig) error {
	switch {
	case config.JSON:
		if err := DisplayJSONResult(out, product, duration, algo); err != nil {
			return err
		}
	case config.Quiet:
		DisplayQuietResult(out, product)
	default:
		DisplayResult(product, duration, config.Verbose, true, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(product, duration, algo, config); err != nil {
			return err
		}
		if !config.Quiet && !config.JSON {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}

// DisplayResult displays the product of a multiplication, with an optional
// detailed analysis block.
//
// Parameters:
//   - product: The computed polynomial.
//   - duration: The multiplication duration.
//   - verbose: When true, the full product is printed regardless of length.
//   - details: When true, a detailed analysis block is included.
//   - out: The output writer.
func DisplayResult(product *poly.Polynomial, duration time.Duration, verbose, details bool, out io.Writer) {
	fmt.Fprintf(out, "Result degree: %s%d%s (%s%d%s coefficients).\n",
		ui.ColorCyan(), product.Degree(), ui.ColorReset(),
		ui.ColorCyan(), product.Len(), ui.ColorReset())

	if details {
		fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
		durationStr := FormatExecutionDuration(duration)
		if duration == 0 {
			durationStr = "< 1µs"
		}
		fmt.Fprintf(out, "Multiplication time   : %s%s%s\n", ui.ColorGreen(), durationStr, ui.ColorReset())

		maxCoeff := 0.0
		for _, c := range product.Reals() {
			if abs := math.Abs(c); abs > maxCoeff {
				maxCoeff = abs
			}
		}
		fmt.Fprintf(out, "Largest coefficient   : %s%.2f%s\n", ui.ColorCyan(), maxCoeff, ui.ColorReset())
	}

	fmt.Fprintf(out, "\n%s--- Product ---%s\n", ui.ColorBold(), ui.ColorReset())
	rendered := FormatPolynomial(product, verbose)
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorGreen(), rendered, ui.ColorReset())
	if !verbose && product.Len() > CoefficientDisplayLimit {
		fmt.Fprintf(out, "(Tip: use the %s-v%s or %s--verbose%s option to display the full polynomial)\n",
			ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	}
}
