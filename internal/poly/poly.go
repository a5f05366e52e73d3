// Package poly provides polynomials with real coefficients and their
// multiplication via FFT-based convolution.
//
// It exposes a `Multiplier` interface that abstracts the underlying
// multiplication algorithm, allowing different strategies (FFT convolution,
// schoolbook convolution) to be used interchangeably and cross-validated. The
// package integrates progress reporting, metrics, and tracing around the pure
// multiplication cores.
package poly

import (
	"fmt"
	"strings"
)

// Polynomial represents a polynomial with real coefficients stored as complex
// samples, where the slice index is the power of the term. The coefficient
// buffer is owned exclusively by its Polynomial: constructors copy their
// input and accessors return copies, so no two instances ever alias the same
// backing array.
type Polynomial struct {
	coeffs []complex128
}

// FromReals constructs a Polynomial from real coefficients ordered from the
// lowest degree term to the highest. Each value is promoted to a complex
// sample with zero imaginary part.
//
// An empty input yields an empty polynomial; empty polynomials are valid
// containers but are rejected as multiplication operands (see Multiplier).
func FromReals(values []float64) *Polynomial {
	coeffs := make([]complex128, len(values))
	for i, v := range values {
		coeffs[i] = complex(v, 0)
	}
	return &Polynomial{coeffs: coeffs}
}

// FromComplex constructs a Polynomial from a complex coefficient buffer. The
// buffer is copied to preserve exclusive ownership.
func FromComplex(coeffs []complex128) *Polynomial {
	c := make([]complex128, len(coeffs))
	copy(c, coeffs)
	return &Polynomial{coeffs: c}
}

// Len returns the number of coefficients, i.e. degree+1 for a non-empty
// polynomial.
func (p *Polynomial) Len() int {
	return len(p.coeffs)
}

// Degree returns the degree implied by the coefficient count, counting
// trailing zero coefficients (no normalization is performed). It returns -1
// for an empty polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the complex coefficient buffer, ordered from
// the lowest degree term to the highest.
func (p *Polynomial) Coefficients() []complex128 {
	c := make([]complex128, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Reals returns the real components of the coefficients, ordered from the
// lowest degree term to the highest. Imaginary residue from the transforms is
// dropped.
func (p *Polynomial) Reals() []float64 {
	r := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		r[i] = real(c)
	}
	return r
}

// String renders the polynomial as a sequence of terms ordered from the
// highest degree to the lowest, each formatted as ±<real>*x^<power> with two
// decimal places, separated by single spaces. Only the real component of each
// coefficient is displayed; imaginary parts (including floating-point noise
// from the transforms) are dropped.
func (p *Polynomial) String() string {
	var b strings.Builder
	for exp := len(p.coeffs) - 1; exp >= 0; exp-- {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%+.2f*x^%d", real(p.coeffs[exp]), exp)
	}
	return b.String()
}

// Close reports whether a and b have the same length and coefficients equal
// within tol, comparing real and imaginary components independently. It is
// the comparison used to cross-validate multiplication algorithms, where the
// FFT path carries small floating-point noise.
func Close(a, b *Polynomial, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.coeffs) != len(b.coeffs) {
		return false
	}
	for i := range a.coeffs {
		if !closeScalar(real(a.coeffs[i]), real(b.coeffs[i]), tol) ||
			!closeScalar(imag(a.coeffs[i]), imag(b.coeffs[i]), tol) {
			return false
		}
	}
	return true
}

func closeScalar(x, y, tol float64) bool {
	d := x - y
	if d < 0 {
		d = -d
	}
	return d <= tol
}
