package poly

// ProgressUpdate carries a single progress report from a running multiplier
// to the display layer.
type ProgressUpdate struct {
	// MultiplierIndex identifies which multiplier the update belongs to when
	// several run concurrently.
	MultiplierIndex int
	// Value is the normalized progress in [0.0, 1.0].
	Value float64
}

// ProgressReporter is the callback used by multiplication cores to report
// normalized progress. Implementations must be safe to call from the
// goroutine running the core.
type ProgressReporter func(progress float64)

// Options configures a multiplication run.
type Options struct {
	// ParallelTransforms runs the two forward transforms of the FFT path
	// concurrently. The operation order within each transform is unchanged,
	// so results are bit-identical to sequential execution.
	ParallelTransforms bool
}
