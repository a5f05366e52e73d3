package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/polymul/internal/cli"
	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/metrics"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/poly"
	"github.com/agbru/polymul/internal/ui"
)

// runMultiply orchestrates the execution of the CLI multiplication command.
func (a *Application) runMultiply(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	// Get multipliers to run
	multipliersToRun := orchestration.GetMultipliersToRun(a.Config.Algo, a.Factory)

	// Skip verbose output in quiet and JSON modes
	quietOutput := a.Config.Quiet || a.Config.JSONOutput
	if !quietOutput {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(multipliersToRun, out)
	}

	// Choose progress reporter based on output mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if quietOutput {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	collector := metrics.MemoryCollector{}
	before := collector.Snapshot()

	// Execute multiplications
	operandA := poly.FromReals(a.Config.CoeffsA)
	operandB := poly.FromReals(a.Config.CoeffsB)
	results := orchestration.ExecuteMultiplications(ctx, multipliersToRun, operandA, operandB,
		a.Config.ToMultiplyOptions(), progressReporter, progressOut)

	// Build output config for the CLI options
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		JSON:       a.Config.JSONOutput,
	}

	exitCode := a.analyzeResultsWithOutput(results, outputCfg, out)

	if a.Config.Details && !quietOutput {
		after := collector.Snapshot()
		delta := metrics.Delta(before, after)
		cli.DisplayMemoryStats(delta.HeapAlloc, delta.TotalAlloc, delta.NumGC, delta.PauseTotalNs, out)
	}

	return exitCode
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.MultiplicationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	bestResult := findBestResult(results)

	// Handle quiet and JSON modes for single result
	if (outputCfg.Quiet || outputCfg.JSON) && bestResult != nil {
		if err := cli.DisplayResultWithConfig(out, bestResult.Product, bestResult.Duration, bestResult.Name, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	// Use standard analysis for non-quiet mode
	presOpts := orchestration.PresentationOptions{
		Verbose:   a.Config.Verbose,
		Details:   a.Config.Details,
		Tolerance: a.Config.Tolerance,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	// Handle file output for non-quiet mode
	if bestResult != nil && exitCode == apperrors.ExitSuccess {
		if err := a.saveResultIfNeeded(bestResult, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if outputCfg.OutputFile != "" {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
		}
	}

	return exitCode
}

func findBestResult(results []orchestration.MultiplicationResult) *orchestration.MultiplicationResult {
	var bestResult *orchestration.MultiplicationResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

func (a *Application) saveResultIfNeeded(res *orchestration.MultiplicationResult, cfg cli.OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if err := cli.WriteResultToFile(res.Product, res.Duration, res.Name, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving result: %v\n", err)
		return err
	}
	return nil
}
