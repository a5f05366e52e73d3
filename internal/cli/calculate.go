package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/polymul/internal/config"
	"github.com/agbru/polymul/internal/poly"
	"github.com/agbru/polymul/internal/sysmon"
	"github.com/agbru/polymul/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the operand degrees, timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	degA := len(cfg.CoeffsA) - 1
	degB := len(cfg.CoeffsB) - 1
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Multiplying a degree-%s%d%s polynomial by a degree-%s%d%s polynomial with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), degA, ui.ColorReset(),
		ui.ColorMagenta(), degB, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	stats := sysmon.Sample()
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), stats.NumCPU, ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Vector extensions: %s%s%s.\n",
		ui.ColorCyan(), stats.VectorExtensions(), ui.ColorReset())
	fmt.Fprintf(out, "Comparison tolerance: %s%g%s.\n",
		ui.ColorCyan(), cfg.Tolerance, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single algorithm vs
// comparison).
//
// Parameters:
//   - multipliers: The slice of multipliers that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(multipliers []poly.Multiplier, out io.Writer) {
	var modeDesc string
	if len(multipliers) > 1 {
		modeDesc = "Parallel comparison of all algorithms"
	} else {
		modeDesc = fmt.Sprintf("Single multiplication with the %s%s%s algorithm",
			ui.ColorGreen(), multipliers[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
