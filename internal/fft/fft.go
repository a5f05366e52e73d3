// Package fft implements an iterative, in-place Cooley-Tukey Fast Fourier
// Transform over complex128 buffers whose length is a power of two.
//
// The package is the transform engine behind polynomial multiplication: the
// forward transform evaluates the implicit polynomial (coefficients = buffer)
// at the n-th roots of unity, and the inverse transform interpolates the
// coefficients back from the point values.
//
// Both transforms copy the caller's buffer into a fresh working slice and
// operate in place on the copy, so the caller's buffer is never observed in a
// permuted or otherwise intermediate state.
package fft

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

// Forward computes the Discrete Fourier Transform of buf: it evaluates the
// polynomial whose coefficients are buf at the len(buf) roots of unity,
// ordered by increasing power.
//
// The input buffer is left untouched; the returned slice is freshly
// allocated. The length of buf must be an exact power of two, otherwise
// Forward panics (see Evaluate).
func Forward(buf []complex128) []complex128 {
	return Evaluate(buf, 1)
}

// Inverse computes the Inverse Discrete Fourier Transform of buf: the same
// butterfly network as Forward with the angle sign flipped, followed by
// dividing every output sample by len(buf).
//
// The input buffer is left untouched; the returned slice is freshly
// allocated. The length of buf must be an exact power of two, otherwise
// Inverse panics (see Evaluate).
func Inverse(buf []complex128) []complex128 {
	coeffs := Evaluate(buf, -1)
	inv := complex(1/float64(len(coeffs)), 0)
	for i := range coeffs {
		coeffs[i] *= inv
	}
	return coeffs
}

// Evaluate runs the iterative decimation-in-time Cooley-Tukey transform with
// the given angle sign (+1 for the forward transform, -1 for the inverse,
// before normalization).
//
// The buffer length must be an exact power of two. This is a hard
// precondition, not a recoverable condition: the bit-reversal indexing is
// undefined for other lengths, so a violation panics rather than returning
// an error. Callers that pad to a power of two (the polynomial multiplier)
// satisfy it by construction.
//
// Complexity: O(n log n) time, O(n) auxiliary space for the working copy and
// the per-pass twiddle factors.
func Evaluate(buf []complex128, sign float64) []complex128 {
	n := len(buf)
	if n == 0 || n&(n-1) != 0 {
		panic(fmt.Sprintf("fft: buffer length %d is not a power of two", n))
	}
	logN := bits.TrailingZeros(uint(n))

	// Copy into the working slice with the bit-reversal permutation applied,
	// leaving the caller's buffer in its original order.
	work := make([]complex128, n)
	shift := bits.UintSize - logN
	for i := range buf {
		work[bits.Reverse(uint(i))>>shift] = buf[i]
	}

	for step := 2; step <= n; step <<= 1 {
		half := step / 2
		theta := sign * 2 * math.Pi / float64(step)
		omega := cmplx.Rect(1, theta)

		// Twiddle factors omega^0 .. omega^(step/2-1), built by repeated
		// multiplication to match the sequential reference operation order.
		twiddle := make([]complex128, half)
		twiddle[0] = 1
		for j := 1; j < half; j++ {
			twiddle[j] = twiddle[j-1] * omega
		}

		for start := 0; start < n; start += step {
			for j := 0; j < half; j++ {
				a := work[start+j]
				b := twiddle[j] * work[start+j+half]
				work[start+j] = a + b
				work[start+j+half] = a - b
			}
		}
	}

	return work
}

// NextPowerOfTwo returns the smallest power of two greater than or equal to
// n. It returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
