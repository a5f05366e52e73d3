package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/polymul/internal/poly"
)

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose   bool
	Details   bool
	Tolerance float64
}

// ProgressReporter defines the interface for displaying multiplication
// progress. This interface decouples the orchestration layer from the
// presentation layer: the orchestrator coordinates the computations while
// implementations handle the visual representation (spinners, progress
// bars, etc.).
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from multipliers.
	//   - numMultipliers: The number of concurrent multipliers being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan poly.ProgressUpdate, numMultipliers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements
// ProgressReporter. This allows passing a function directly where a
// ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan poly.ProgressUpdate, numMultipliers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan poly.ProgressUpdate, numMultipliers int, out io.Writer) {
	f(wg, progressChan, numMultipliers, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan poly.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting multiplication
// results. This interface decouples the orchestration layer from
// presentation concerns, allowing different output formats (CLI, JSON, etc.)
// without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []MultiplicationResult, out io.Writer)

	// PresentResult displays the final product.
	PresentResult(result MultiplicationResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles multiplication errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}
