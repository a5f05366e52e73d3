package poly

import (
	"testing"
)

func TestStringRendering(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		coeffs []float64
		want   string
	}{
		{
			name:   "mixed signs",
			coeffs: []float64{21, -17, -14, 54, -29, 16, 21},
			want:   "+21.00*x^6 +16.00*x^5 -29.00*x^4 +54.00*x^3 -14.00*x^2 -17.00*x^1 +21.00*x^0",
		},
		{
			name:   "constant",
			coeffs: []float64{5},
			want:   "+5.00*x^0",
		},
		{
			name:   "fractional rounding",
			coeffs: []float64{1.005, -2.5},
			want:   "-2.50*x^1 +1.00*x^0",
		},
		{
			name:   "empty",
			coeffs: nil,
			want:   "",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FromReals(tc.coeffs).String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDegreeAndLen(t *testing.T) {
	t.Parallel()

	if got := FromReals(nil).Degree(); got != -1 {
		t.Errorf("empty Degree() = %d, want -1", got)
	}
	p := FromReals([]float64{1, 0, 0})
	if got := p.Degree(); got != 2 {
		t.Errorf("Degree() = %d, want 2 (trailing zeros count)", got)
	}
	if got := p.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	p := FromReals([]float64{1, 2, 3})

	c := p.Coefficients()
	c[0] = complex(99, 0)
	if p.coeffs[0] != complex(1, 0) {
		t.Error("mutating Coefficients() result changed the polynomial")
	}

	src := []complex128{1, 2}
	q := FromComplex(src)
	src[0] = 42
	if q.coeffs[0] != 1 {
		t.Error("FromComplex aliased the input buffer")
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	a := FromReals([]float64{1, 2, 3})
	b := FromReals([]float64{1 + 1e-9, 2, 3 - 1e-9})
	c := FromReals([]float64{1, 2})
	d := FromReals([]float64{1, 2, 4})

	if !Close(a, b, 1e-6) {
		t.Error("Close() = false for polynomials within tolerance")
	}
	if Close(a, d, 1e-6) {
		t.Error("Close() = true for polynomials outside tolerance")
	}
	if Close(a, c, 1e-6) {
		t.Error("Close() = true for different lengths")
	}
	if Close(a, nil, 1e-6) {
		t.Error("Close(a, nil) = true")
	}
	if !Close(nil, nil, 1e-6) {
		t.Error("Close(nil, nil) = false")
	}
}
