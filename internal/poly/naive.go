package poly

import (
	"context"
	"fmt"
)

// naiveProgressStride controls how often the schoolbook loop reports progress
// and polls for cancellation. Checking every row would dominate the inner
// loop for small operands.
const naiveProgressStride = 64

// NaiveMultiplier multiplies polynomials by the O(n*m) schoolbook
// convolution. It is the ground-truth algorithm: exact in operation count,
// free of transform round-off structure, and used by the orchestration layer
// to cross-validate the FFT path.
type NaiveMultiplier struct{}

// Name returns the display name of the algorithm.
func (m *NaiveMultiplier) Name() string {
	return "Schoolbook Convolution"
}

// MultiplyCore computes the discrete convolution of the two coefficient
// buffers. The operands are read-only; the result buffer is fresh.
func (m *NaiveMultiplier) MultiplyCore(ctx context.Context, reporter ProgressReporter, a, b *Polynomial, opts Options) (*Polynomial, error) {
	n := a.Len()
	mLen := b.Len()

	out := make([]complex128, n+mLen-1)
	for i := 0; i < n; i++ {
		if i%naiveProgressStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("canceled during convolution: %w", err)
			}
			reporter(float64(i) / float64(n))
		}
		ai := a.coeffs[i]
		for j := 0; j < mLen; j++ {
			out[i+j] += ai * b.coeffs[j]
		}
	}

	return &Polynomial{coeffs: out}, nil
}
