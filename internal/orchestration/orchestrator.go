package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/poly"
)

// MultiplicationResult encapsulates the outcome of a single polynomial
// multiplication. It serves as a standardized container for results from
// different algorithms, facilitating comparison and reporting.
type MultiplicationResult struct {
	// Name is the identifier of the algorithm used (e.g., "FFT Convolution").
	Name string
	// Product is the computed polynomial. It is nil if an error occurred.
	Product *poly.Polynomial
	// Duration is the time taken to complete the multiplication.
	Duration time.Duration
	// Err contains any error that occurred during the multiplication.
	Err error
}

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// computation goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// GetMultipliersToRun resolves the algorithm selection to the concrete
// multipliers to execute: "all" selects every registered algorithm, any
// other name selects the matching one. An unknown name yields an empty
// slice; configuration validation rejects it before this point in normal
// operation.
func GetMultipliersToRun(algo string, factory poly.MultiplierFactory) []poly.Multiplier {
	if algo == "all" {
		return factory.GetAll()
	}
	if m, ok := factory.Get(algo); ok {
		return []poly.Multiplier{m}
	}
	return nil
}

// ExecuteMultiplications orchestrates the concurrent execution of one or
// more polynomial multiplications.
//
// It manages the lifecycle of the computation goroutines, collects their
// results, and coordinates the display of progress updates. This function is
// the core of the application's concurrency model.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - multipliers: A slice of multipliers to execute.
//   - a, b: The operands, shared read-only across the multipliers.
//   - opts: Options passed through to each multiplier.
//   - progressReporter: The progress reporter for displaying updates (use
//     NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []MultiplicationResult: A slice containing the result of each
//     multiplication, in multiplier order.
func ExecuteMultiplications(ctx context.Context, multipliers []poly.Multiplier, a, b *poly.Polynomial, opts poly.Options, progressReporter ProgressReporter, out io.Writer) []MultiplicationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]MultiplicationResult, len(multipliers))
	progressChan := make(chan poly.ProgressUpdate, len(multipliers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(multipliers), out)

	for i, m := range multipliers {
		idx, multiplier := i, m
		g.Go(func() error {
			startTime := time.Now()
			product, err := multiplier.Multiply(ctx, progressChan, idx, a, b, opts)
			results[idx] = MultiplicationResult{
				Name: multiplier.Name(), Product: product, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple algorithms
// and generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful multiplications within the configured tolerance, and displays a
// comparative table. It handles the logic for determining global success or
// failure based on the individual outcomes.
//
// Parameters:
//   - results: The slice of multiplication results to analyze.
//   - presOpts: Presentation options, including the comparison tolerance.
//   - presenter: The result presenter for display formatting.
//   - errHandler: Maps the first error to an exit code when nothing
//     succeeded.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []MultiplicationResult, presOpts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *MultiplicationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the multiplication.\n")
		return errHandler.HandleError(firstError, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && !poly.Close(res.Product, firstValidResult.Product, presOpts.Tolerance) {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the algorithms.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, presOpts, out)
	return apperrors.ExitSuccess
}
