package sysmon

import "testing"

func TestSample(t *testing.T) {
	t.Parallel()

	stats := Sample()
	if stats.NumCPU < 1 {
		t.Errorf("NumCPU = %d, want at least 1", stats.NumCPU)
	}
}

func TestVectorExtensions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		stats Stats
		want  string
	}{
		{name: "avx2 with fma", stats: Stats{HasAVX2: true, HasFMA: true}, want: "AVX2+FMA"},
		{name: "avx2 only", stats: Stats{HasAVX2: true}, want: "AVX2"},
		{name: "sse4 only", stats: Stats{HasSSE4: true}, want: "SSE4.1"},
		{name: "none", stats: Stats{}, want: "none detected"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.stats.VectorExtensions(); got != tc.want {
				t.Errorf("VectorExtensions() = %q, want %q", got, tc.want)
			}
		})
	}
}
