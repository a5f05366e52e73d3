package fft

import (
	"math"
	"math/cmplx"
	"testing"
)

const epsilon = 1e-9

func complexClose(a, b complex128, tol float64) bool {
	return math.Abs(real(a)-real(b)) <= tol && math.Abs(imag(a)-imag(b)) <= tol
}

func TestForwardKnownValues(t *testing.T) {
	t.Parallel()

	// Hand-computed 4-point transform of [1, 2, 3, 4] with the positive
	// angle convention.
	input := []complex128{1, 2, 3, 4}
	expected := []complex128{
		complex(10, 0),
		complex(-2, -2),
		complex(-2, 0),
		complex(-2, 2),
	}

	got := Forward(input)
	if len(got) != len(expected) {
		t.Fatalf("Forward() returned %d samples, want %d", len(got), len(expected))
	}
	for i := range expected {
		if !complexClose(got[i], expected[i], epsilon) {
			t.Errorf("Forward()[%d] = %v, want %v", i, got[i], expected[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 64, 256} {
		input := make([]complex128, n)
		for i := range input {
			// Deterministic but non-trivial samples
			input[i] = complex(math.Sin(float64(i)*0.7)*10, math.Cos(float64(i))*3)
		}

		got := Inverse(Forward(input))
		for i := range input {
			if !complexClose(got[i], input[i], epsilon) {
				t.Fatalf("n=%d: round trip diverged at %d: got %v, want %v", n, i, got[i], input[i])
			}
		}
	}
}

func TestForwardInverseSymmetry(t *testing.T) {
	t.Parallel()

	// The inverse of a pure frequency spike is a complex exponential.
	n := 8
	spike := make([]complex128, n)
	spike[1] = complex(float64(n), 0)

	got := Inverse(spike)
	for i := range got {
		want := cmplx.Rect(1, -2*math.Pi*float64(i)/float64(n))
		if !complexClose(got[i], want, epsilon) {
			t.Errorf("Inverse(spike)[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestInputBufferUntouched(t *testing.T) {
	t.Parallel()

	input := []complex128{1, 2, 3, 4, 5, 6, 7, 8}
	saved := make([]complex128, len(input))
	copy(saved, input)

	_ = Forward(input)
	_ = Inverse(input)

	for i := range input {
		if input[i] != saved[i] {
			t.Fatalf("input[%d] mutated: got %v, want %v", i, input[i], saved[i])
		}
	}
}

func TestSingleSample(t *testing.T) {
	t.Parallel()

	in := []complex128{complex(3.5, -1.25)}
	if got := Forward(in); got[0] != in[0] {
		t.Errorf("Forward(single) = %v, want %v", got[0], in[0])
	}
	if got := Inverse(in); got[0] != in[0] {
		t.Errorf("Inverse(single) = %v, want %v", got[0], in[0])
	}
}

func TestEvaluatePanicsOnInvalidLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 3, 6, 12, 100} {
		n := n
		t.Run("", func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("Evaluate accepted buffer of length %d, want panic", n)
				}
			}()
			Forward(make([]complex128, n))
		})
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{1023, 1024},
		{1025, 2048},
	}
	for _, tc := range cases {
		if got := NextPowerOfTwo(tc.in); got != tc.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
