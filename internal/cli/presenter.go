package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/orchestration"
	"github.com/agbru/fibseq/internal/ui"
)

// CLIPresenter renders orchestration results for the terminal.
// It implements orchestration.ResultPresenter.
type CLIPresenter struct {
	// Config controls truncation, quiet mode and optional file output.
	Config OutputConfig
}

// PresentComparisonTable renders the per-strategy outcome table, already
// sorted by the orchestrator (successes first, fastest first).
func (p CLIPresenter) PresentComparisonTable(results []orchestration.EvaluationResult, out io.Writer) {
	if p.Config.Quiet {
		return
	}

	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%-42s %12s  %s\n", "Strategy", "Duration", "Status")
	for _, res := range results {
		status := ui.Colorize(theme.Success, "OK")
		if res.Err != nil {
			status = ui.Colorize(theme.Error, res.Err.Error())
		}
		fmt.Fprintf(out, "%-42s %12s  %s\n", res.Name, FormatExecutionDuration(res.Duration), status)
	}
}

// PresentResult renders the agreed-upon value and writes it to the configured
// output file, if any.
func (p CLIPresenter) PresentResult(result orchestration.EvaluationResult, n uint64, out io.Writer) {
	if p.Config.Quiet {
		fmt.Fprintln(out, result.Result.String())
	} else if p.Config.ShowValue {
		fmt.Fprintf(out, "\nF(%d) = %s\n", n, FormatResult(result.Result, p.Config.Verbose))
	}

	if err := WriteResultToFile(result.Result, n, result.Duration, result.Name, p.Config); err != nil {
		fmt.Fprintf(out, "Warning: could not write result file: %v\n", err)
	}
}

// HandleError renders err and maps it to a process exit code:
// deadline → timeout, cancellation → canceled (SIGINT convention),
// validation → config error, anything else → generic failure.
func (p CLIPresenter) HandleError(err error, out io.Writer) int {
	if err == nil {
		return apperrors.ExitErrorGeneric
	}

	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "%s %v\n", ui.Colorize(theme.Error, "Error:"), err)

	var validationErr apperrors.ValidationError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return apperrors.ExitErrorCanceled
	case errors.As(err, &validationErr):
		return apperrors.ExitErrorConfig
	default:
		return apperrors.ExitErrorGeneric
	}
}

// compile-time interface check
var _ orchestration.ResultPresenter = CLIPresenter{}
