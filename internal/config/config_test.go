package config

import (
	"errors"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/polymul/internal/errors"
)

var testAlgos = []string{"fft", "naive"}

func TestParseCoefficients(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    []float64
		wantErr bool
	}{
		{name: "simple", input: "7,-1,4,3", want: []float64{7, -1, 4, 3}},
		{name: "whitespace", input: " 1 , 2.5 ,  -3 ", want: []float64{1, 2.5, -3}},
		{name: "single", input: "42", want: []float64{42}},
		{name: "scientific notation", input: "1e3,-2.5e-1", want: []float64{1000, -0.25}},
		{name: "empty", input: "", want: nil},
		{name: "blank", input: "   ", want: nil},
		{name: "garbage entry", input: "1,abc,3", wantErr: true},
		{name: "trailing comma", input: "1,2,", wantErr: true},
		{name: "nan rejected", input: "1,NaN", wantErr: true},
		{name: "inf rejected", input: "Inf,2", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCoefficients(tc.input)
			if tc.wantErr {
				var cfgErr apperrors.ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("ParseCoefficients(%q) error = %v, want ConfigError", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoefficients(%q) error = %v", tc.input, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("ParseCoefficients(%q) = %v, want %v", tc.input, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("ParseCoefficients(%q)[%d] = %v, want %v", tc.input, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("polymul", nil, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.A != DefaultA || cfg.B != DefaultB {
		t.Errorf("operands = %q, %q, want %q, %q", cfg.A, cfg.B, DefaultA, DefaultB)
	}
	if cfg.Algo != DefaultAlgo {
		t.Errorf("Algo = %q, want %q", cfg.Algo, DefaultAlgo)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Tolerance != DefaultTolerance {
		t.Errorf("Tolerance = %g, want %g", cfg.Tolerance, DefaultTolerance)
	}
	if !cfg.Parallel {
		t.Error("Parallel = false, want true by default")
	}
	if len(cfg.CoeffsA) != 4 || len(cfg.CoeffsB) != 4 {
		t.Errorf("parsed coefficient counts = %d, %d, want 4, 4", len(cfg.CoeffsA), len(cfg.CoeffsB))
	}
}

func TestParseConfigFlags(t *testing.T) {
	args := []string{
		"-a", "1,2",
		"-b", "3",
		"-algo", "FFT",
		"-timeout", "5s",
		"-tolerance", "0.01",
		"-q",
		"-json",
		"-o", "/tmp/result.txt",
		"-server",
		"-port", "9090",
	}

	cfg, err := ParseConfig("polymul", args, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Algo != "fft" {
		t.Errorf("Algo = %q, want %q (lowercased)", cfg.Algo, "fft")
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.Tolerance != 0.01 {
		t.Errorf("Tolerance = %g, want 0.01", cfg.Tolerance)
	}
	if !cfg.Quiet || !cfg.JSONOutput || !cfg.ServerMode {
		t.Errorf("Quiet/JSONOutput/ServerMode = %t/%t/%t, want all true", cfg.Quiet, cfg.JSONOutput, cfg.ServerMode)
	}
	if cfg.OutputFile != "/tmp/result.txt" {
		t.Errorf("OutputFile = %q, want /tmp/result.txt", cfg.OutputFile)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if len(cfg.CoeffsA) != 2 || len(cfg.CoeffsB) != 1 {
		t.Errorf("parsed coefficient counts = %d, %d, want 2, 1", len(cfg.CoeffsA), len(cfg.CoeffsB))
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "bad coefficient", args: []string{"-a", "1,oops"}},
		{name: "empty operand", args: []string{"-a", ""}},
		{name: "unknown algorithm", args: []string{"-algo", "karatsuba"}},
		{name: "unknown flag", args: []string{"-frobnicate"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseConfig("polymul", tc.args, io.Discard, testAlgos); err == nil {
				t.Errorf("ParseConfig(%v) succeeded, want error", tc.args)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"ALGO", "naive")
	t.Setenv(EnvPrefix+"TIMEOUT", "30s")
	t.Setenv(EnvPrefix+"TOLERANCE", "0.5")
	t.Setenv(EnvPrefix+"PORT", "7070")

	cfg, err := ParseConfig("polymul", nil, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Algo != "naive" {
		t.Errorf("Algo = %q, want env override %q", cfg.Algo, "naive")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want env override 30s", cfg.Timeout)
	}
	if cfg.Tolerance != 0.5 {
		t.Errorf("Tolerance = %g, want env override 0.5", cfg.Tolerance)
	}
	if cfg.Port != "7070" {
		t.Errorf("Port = %q, want env override 7070", cfg.Port)
	}
}

func TestFlagBeatsEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"ALGO", "naive")

	cfg, err := ParseConfig("polymul", []string{"-algo", "fft"}, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Algo != "fft" {
		t.Errorf("Algo = %q, want explicit flag value %q", cfg.Algo, "fft")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := AppConfig{
		Algo:      "fft",
		Timeout:   time.Minute,
		Tolerance: 1e-6,
		CoeffsA:   []float64{1},
		CoeffsB:   []float64{2},
	}
	if err := valid.Validate(testAlgos); err != nil {
		t.Fatalf("Validate() error = %v for valid config", err)
	}

	cases := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{name: "zero timeout", mutate: func(c *AppConfig) { c.Timeout = 0 }},
		{name: "negative tolerance", mutate: func(c *AppConfig) { c.Tolerance = -1 }},
		{name: "empty operand a", mutate: func(c *AppConfig) { c.CoeffsA = nil }},
		{name: "empty operand b", mutate: func(c *AppConfig) { c.CoeffsB = nil }},
		{name: "unknown algo", mutate: func(c *AppConfig) { c.Algo = "toom-cook" }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate(testAlgos)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Validate() error = %v, want ConfigError", err)
			}
		})
	}
}

func TestToMultiplyOptions(t *testing.T) {
	t.Parallel()

	if opts := (AppConfig{Parallel: true}).ToMultiplyOptions(); !opts.ParallelTransforms {
		t.Error("ToMultiplyOptions() dropped Parallel=true")
	}
	if opts := (AppConfig{}).ToMultiplyOptions(); opts.ParallelTransforms {
		t.Error("ToMultiplyOptions() set ParallelTransforms without Parallel")
	}
}
