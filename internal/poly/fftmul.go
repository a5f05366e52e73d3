package poly

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/polymul/internal/fft"
)

// FFTMultiplier multiplies polynomials by convolution through the frequency
// domain: both operands are zero-padded to a common power-of-two length large
// enough to hold the exact product, forward-transformed, multiplied
// point-wise, and inverse-transformed back to coefficients.
//
// The padding guarantees the transform engine's power-of-two precondition and
// rules out wraparound aliasing, so the truncated result is the exact
// convolution up to double-precision rounding. Time complexity is
// O(n log n) in the padded length, against O(n*m) for the schoolbook path.
type FFTMultiplier struct{}

// Name returns the display name of the algorithm.
func (m *FFTMultiplier) Name() string {
	return "FFT Convolution"
}

// MultiplyCore computes the product of a and b. The operands are never
// mutated: the padded buffers handed to the transform engine are fresh
// copies. Progress is reported after each of the four stages (forward
// transforms, point-wise product, inverse transform, truncation).
func (m *FFTMultiplier) MultiplyCore(ctx context.Context, reporter ProgressReporter, a, b *Polynomial, opts Options) (*Polynomial, error) {
	n := a.Len()
	mLen := b.Len()

	targetLen := n + mLen - 1
	paddedLen := fft.NextPowerOfTwo(targetLen)

	paddedA := padded(a.coeffs, paddedLen)
	paddedB := padded(b.coeffs, paddedLen)

	var pointsA, pointsB []complex128
	if opts.ParallelTransforms {
		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			pointsA = fft.Forward(paddedA)
			return nil
		})
		g.Go(func() error {
			pointsB = fft.Forward(paddedB)
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		pointsA = fft.Forward(paddedA)
		pointsB = fft.Forward(paddedB)
	}
	reporter(0.50)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("canceled after forward transforms: %w", err)
	}

	// Point-wise product in the frequency domain corresponds to convolution
	// in the coefficient domain because paddedLen >= targetLen.
	for i := range pointsA {
		pointsA[i] *= pointsB[i]
	}
	reporter(0.65)

	coeffs := fft.Inverse(pointsA)
	reporter(0.90)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("canceled after inverse transform: %w", err)
	}

	return &Polynomial{coeffs: coeffs[:targetLen:targetLen]}, nil
}

// padded returns a copy of coeffs extended with zero samples to length n.
func padded(coeffs []complex128, n int) []complex128 {
	p := make([]complex128, n)
	copy(p, coeffs)
	return p
}
