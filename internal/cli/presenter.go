package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/flowsample/internal/format"
	"github.com/agbru/flowsample/internal/metrics"
	"github.com/agbru/flowsample/internal/orchestration"
	"github.com/agbru/flowsample/internal/sysmon"
	"github.com/agbru/flowsample/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// FormatStatus returns the rendered status cell for a step result.
func FormatStatus(err error) string {
	if err != nil {
		return ui.ErrorStyle().Render(fmt.Sprintf("Failure (%v)", err))
	}
	return ui.SuccessStyle().Render("Success")
}

// PresentSummary displays the step table with names, durations, and status.
// Columns are padded on the rendered width so ANSI sequences do not skew
// the alignment.
func (CLIResultPresenter) PresentSummary(results []orchestration.StepResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Step Summary ---\n")

	nameWidth := len("Step")
	durationWidth := len("Duration")
	durations := make([]string, len(results))
	for i, res := range results {
		nameWidth = max(nameWidth, lipgloss.Width(res.Name))
		durations[i] = format.FormatExecutionDuration(res.Duration)
		durationWidth = max(durationWidth, lipgloss.Width(durations[i]))
	}

	header := ui.HeaderStyle()
	fmt.Fprintf(out, "%s   %s   %s\n",
		padRight(header.Render("Step"), nameWidth),
		padRight(header.Render("Duration"), durationWidth),
		header.Render("Status"))

	for i, res := range results {
		fmt.Fprintf(out, "%s   %s   %s\n",
			padRight(ui.NameStyle().Render(res.Name), nameWidth),
			padRight(ui.DurationStyle().Render(durations[i]), durationWidth),
			FormatStatus(res.Err))
	}
}

// padRight pads s with spaces up to width visible cells.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// DisplayMemoryStats shows memory statistics gathered across the run.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	muted := ui.MutedStyle()
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", muted.Render(format.FormatBytes(snap.HeapAlloc)))
	fmt.Fprintf(out, "  Allocated:       %s\n", muted.Render(format.FormatBytes(snap.TotalAlloc)))
	fmt.Fprintf(out, "  Heap objects:    %d\n", snap.HeapObjects)
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
}

// DisplaySystemStats shows host-wide resource usage at the end of the run.
func DisplaySystemStats(stats sysmon.Stats, out io.Writer) {
	muted := ui.MutedStyle()
	fmt.Fprintf(out, "\nSystem:\n")
	fmt.Fprintf(out, "  CPU:             %s\n", muted.Render(fmt.Sprintf("%.1f%%", stats.CPUPercent)))
	fmt.Fprintf(out, "  Memory:          %s / %s (%.1f%%)\n",
		muted.Render(format.FormatBytes(stats.MemUsed)), format.FormatBytes(stats.MemTotal), stats.MemPercent)
}
