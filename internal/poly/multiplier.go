package poly

//go:generate mockgen -source=multiplier.go -destination=mocks/mock_multiplier.go -package=mocks

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	apperrors "github.com/agbru/polymul/internal/errors"
)

var (
	multiplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymul_multiplications_total",
			Help: "The total number of polynomial multiplications processed",
		},
		[]string{"algorithm", "status"},
	)
	multiplicationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "polymul_multiplication_duration_seconds",
			Help: "The duration of polynomial multiplications in seconds",
		},
		[]string{"algorithm"},
	)
)

// Multiplier defines the public interface for a polynomial multiplier.
// It is the primary abstraction used by the application's orchestration layer
// to interact with the different multiplication algorithms.
type Multiplier interface {
	// Multiply computes the product of a and b. It is designed for safe
	// concurrent execution and supports cancellation through the provided
	// context. Progress updates are sent asynchronously to progressChan.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for sending progress updates (may be nil).
	//   - mulIndex: A unique index for this multiplier instance.
	//   - a, b: The operands. Neither is mutated.
	//   - opts: Configuration options for the multiplication.
	//
	// Returns:
	//   - *Polynomial: The product, of length a.Len()+b.Len()-1.
	//   - error: An error if one occurred (e.g., context cancellation).
	Multiply(ctx context.Context, progressChan chan<- ProgressUpdate, mulIndex int, a, b *Polynomial, opts Options) (*Polynomial, error)

	// Name returns the display name of the multiplication algorithm.
	Name() string
}

// coreMultiplier defines the internal interface for a pure multiplication
// algorithm, free of cross-cutting concerns.
type coreMultiplier interface {
	MultiplyCore(ctx context.Context, reporter ProgressReporter, a, b *Polynomial, opts Options) (*Polynomial, error)
	Name() string
}

// PolyMultiplier implements the Multiplier interface by wrapping a
// coreMultiplier with cross-cutting concerns: operand validation, tracing,
// metrics, and structured logging. The cores stay pure computation.
type PolyMultiplier struct {
	core coreMultiplier
}

// NewMultiplier constructs a PolyMultiplier around the given core. It panics
// if the core is nil, since a multiplier without an algorithm is a
// programming error rather than a runtime condition.
func NewMultiplier(core coreMultiplier) Multiplier {
	if core == nil {
		panic("poly: the coreMultiplier implementation cannot be nil")
	}
	return &PolyMultiplier{core: core}
}

// Name returns the name of the wrapped core algorithm.
func (m *PolyMultiplier) Name() string {
	return m.core.Name()
}

// Multiply validates the operands, then delegates to the wrapped core with a
// progress reporter adapted to progressChan. Each call is traced with an
// OpenTelemetry span and recorded in the Prometheus multiplication metrics.
//
// Empty operands are rejected with a ValidationError: a product with zero
// coefficients has no defined rendering or length, and rejecting up front
// keeps the transform engine's power-of-two precondition trivially
// satisfiable (length-1 constants, by contrast, route through the full
// machinery).
func (m *PolyMultiplier) Multiply(ctx context.Context, progressChan chan<- ProgressUpdate, mulIndex int, a, b *Polynomial, opts Options) (result *Polynomial, err error) {
	tracer := otel.Tracer("poly")
	ctx, span := tracer.Start(ctx, "Multiply")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		switch {
		case apperrors.IsContextError(err):
			status = "canceled"
		case err != nil:
			status = "error"
		}
		algoName := m.core.Name()
		multiplicationsTotal.WithLabelValues(algoName, status).Inc()
		multiplicationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Int("len_a", a.Len()).
			Int("len_b", b.Len()).
			Float64("duration", duration).
			Str("status", status).
			Msg("multiplication completed")
	}()

	if a.Len() == 0 {
		return nil, apperrors.ValidationError{Field: "a", Message: "polynomial must have at least one coefficient"}
	}
	if b.Len() == 0 {
		return nil, apperrors.ValidationError{Field: "b", Message: "polynomial must have at least one coefficient"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reporter := func(v float64) {
		if progressChan == nil {
			return
		}
		select {
		case progressChan <- ProgressUpdate{MultiplierIndex: mulIndex, Value: v}:
		default:
			// Drop the update rather than block the computation when the
			// display is slow to consume.
		}
	}

	result, err = m.core.MultiplyCore(ctx, reporter, a, b, opts)
	if err == nil && result != nil {
		reporter(1.0)
	}
	return result, err
}
