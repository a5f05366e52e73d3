package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/poly"
)

// fakeMultiplier returns a canned product or error and records invocations.
type fakeMultiplier struct {
	name    string
	product *poly.Polynomial
	err     error
	delay   time.Duration

	mu    sync.Mutex
	calls int
}

func (f *fakeMultiplier) Name() string { return f.name }

func (f *fakeMultiplier) Multiply(ctx context.Context, progressChan chan<- poly.ProgressUpdate, mulIndex int, a, b *poly.Polynomial, opts poly.Options) (*poly.Polynomial, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if progressChan != nil {
		select {
		case progressChan <- poly.ProgressUpdate{MultiplierIndex: mulIndex, Value: 1.0}:
		default:
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.product, f.err
}

type recordingPresenter struct {
	tableCalls  int
	resultCalls int
	lastResult  MultiplicationResult
}

func (p *recordingPresenter) PresentComparisonTable(results []MultiplicationResult, out io.Writer) {
	p.tableCalls++
}

func (p *recordingPresenter) PresentResult(result MultiplicationResult, opts PresentationOptions, out io.Writer) {
	p.resultCalls++
	p.lastResult = result
}

type codeErrorHandler struct{ code int }

func (h codeErrorHandler) HandleError(err error, out io.Writer) int { return h.code }

func TestGetMultipliersToRun(t *testing.T) {
	t.Parallel()

	factory := poly.NewDefaultFactory()

	if got := GetMultipliersToRun("all", factory); len(got) != 2 {
		t.Errorf(`GetMultipliersToRun("all") returned %d multipliers, want 2`, len(got))
	}
	single := GetMultipliersToRun(poly.AlgoFFT, factory)
	if len(single) != 1 {
		t.Fatalf(`GetMultipliersToRun("fft") returned %d multipliers, want 1`, len(single))
	}
	if got := GetMultipliersToRun("bogus", factory); got != nil {
		t.Errorf(`GetMultipliersToRun("bogus") = %v, want nil`, got)
	}
}

func TestExecuteMultiplicationsResultOrder(t *testing.T) {
	t.Parallel()

	productA := poly.FromReals([]float64{1})
	productB := poly.FromReals([]float64{2})
	multipliers := []poly.Multiplier{
		&fakeMultiplier{name: "slow", product: productA, delay: 20 * time.Millisecond},
		&fakeMultiplier{name: "fast", product: productB},
	}

	results := ExecuteMultiplications(context.Background(), multipliers,
		poly.FromReals([]float64{1}), poly.FromReals([]float64{1}),
		poly.Options{}, NullProgressReporter{}, io.Discard)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Slot order follows multiplier order regardless of completion order.
	if results[0].Name != "slow" || results[1].Name != "fast" {
		t.Errorf("result order = %q, %q, want slow, fast", results[0].Name, results[1].Name)
	}
	if results[0].Product != productA || results[1].Product != productB {
		t.Error("results carry the wrong products")
	}
	if results[0].Duration < 20*time.Millisecond {
		t.Errorf("slow duration = %v, want >= 20ms", results[0].Duration)
	}
}

func TestExecuteMultiplicationsReporterSeesClose(t *testing.T) {
	t.Parallel()

	multipliers := []poly.Multiplier{
		&fakeMultiplier{name: "one", product: poly.FromReals([]float64{1})},
	}

	var received int
	reporter := ProgressReporterFunc(func(wg *sync.WaitGroup, progressChan <-chan poly.ProgressUpdate, numMultipliers int, out io.Writer) {
		defer wg.Done()
		for range progressChan {
			received++
		}
	})

	ExecuteMultiplications(context.Background(), multipliers,
		poly.FromReals([]float64{1}), poly.FromReals([]float64{1}),
		poly.Options{}, reporter, io.Discard)

	// The reporter loop only exits when the channel is closed, so reaching
	// here proves the orchestrator closed it and waited.
	if received == 0 {
		t.Error("reporter received no progress updates")
	}
}

func TestExecuteMultiplicationsCapturesErrors(t *testing.T) {
	t.Parallel()

	failure := errors.New("transform failed")
	multipliers := []poly.Multiplier{
		&fakeMultiplier{name: "ok", product: poly.FromReals([]float64{1})},
		&fakeMultiplier{name: "broken", err: failure},
	}

	results := ExecuteMultiplications(context.Background(), multipliers,
		poly.FromReals([]float64{1}), poly.FromReals([]float64{1}),
		poly.Options{}, NullProgressReporter{}, io.Discard)

	if results[0].Err != nil {
		t.Errorf("ok result has error %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, failure) {
		t.Errorf("broken result error = %v, want %v", results[1].Err, failure)
	}
}

func TestAnalyzeComparisonResultsSuccess(t *testing.T) {
	t.Parallel()

	product := poly.FromReals([]float64{21, -17, -14, 54, -29, 16, 21})
	results := []MultiplicationResult{
		{Name: "FFT Convolution", Product: product, Duration: time.Millisecond},
		{Name: "Schoolbook Convolution", Product: product, Duration: 5 * time.Millisecond},
	}

	presenter := &recordingPresenter{}
	var buf bytes.Buffer
	code := AnalyzeComparisonResults(results, PresentationOptions{Tolerance: 1e-6}, presenter, codeErrorHandler{code: 1}, &buf)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if presenter.tableCalls != 1 || presenter.resultCalls != 1 {
		t.Errorf("presenter calls = %d table, %d result, want 1 and 1", presenter.tableCalls, presenter.resultCalls)
	}
	if !strings.Contains(buf.String(), "Success") {
		t.Errorf("output = %q, want success banner", buf.String())
	}
	// The fastest successful result is presented.
	if presenter.lastResult.Name != "FFT Convolution" {
		t.Errorf("presented result = %q, want fastest", presenter.lastResult.Name)
	}
}

func TestAnalyzeComparisonResultsMismatch(t *testing.T) {
	t.Parallel()

	results := []MultiplicationResult{
		{Name: "a", Product: poly.FromReals([]float64{1, 2}), Duration: time.Millisecond},
		{Name: "b", Product: poly.FromReals([]float64{1, 3}), Duration: 2 * time.Millisecond},
	}

	var buf bytes.Buffer
	code := AnalyzeComparisonResults(results, PresentationOptions{Tolerance: 1e-6}, &recordingPresenter{}, codeErrorHandler{code: 1}, &buf)

	if code != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if !strings.Contains(buf.String(), "inconsistency") {
		t.Errorf("output = %q, want inconsistency banner", buf.String())
	}
}

func TestAnalyzeComparisonResultsAllFailed(t *testing.T) {
	t.Parallel()

	results := []MultiplicationResult{
		{Name: "a", Err: context.DeadlineExceeded},
		{Name: "b", Err: errors.New("boom")},
	}

	presenter := &recordingPresenter{}
	var buf bytes.Buffer
	code := AnalyzeComparisonResults(results, PresentationOptions{Tolerance: 1e-6}, presenter, codeErrorHandler{code: 42}, &buf)

	if code != 42 {
		t.Errorf("exit code = %d, want error handler's 42", code)
	}
	if presenter.resultCalls != 0 {
		t.Error("PresentResult called although nothing succeeded")
	}
	if !strings.Contains(buf.String(), "No algorithm could complete") {
		t.Errorf("output = %q, want global failure banner", buf.String())
	}
}

func TestAnalyzeComparisonResultsPartialFailure(t *testing.T) {
	t.Parallel()

	product := poly.FromReals([]float64{3, 10, 8})
	results := []MultiplicationResult{
		{Name: "broken", Err: errors.New("boom"), Duration: time.Millisecond},
		{Name: "ok", Product: product, Duration: 2 * time.Millisecond},
	}

	presenter := &recordingPresenter{}
	code := AnalyzeComparisonResults(results, PresentationOptions{Tolerance: 1e-6}, presenter, codeErrorHandler{code: 1}, io.Discard)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want success when one algorithm completes", code)
	}
	if presenter.lastResult.Name != "ok" {
		t.Errorf("presented result = %q, want the successful one", presenter.lastResult.Name)
	}
}
