// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySequence], [DisplayMembership].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fibseq/internal/ui"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value regardless of its length.
	Verbose bool
	// ShowValue enables the calculated value display when true.
	ShowValue bool
}

// FormatResult formats a Fibonacci value for terminal display.
// Values longer than TruncationLimit digits are truncated to their leading
// and trailing DisplayEdges digits unless verbose is set.
//
// Parameters:
//   - result: The value to format.
//   - verbose: Disables truncation when true.
//
// Returns:
//   - string: The formatted decimal representation.
func FormatResult(result *big.Int, verbose bool) string {
	s := result.String()
	if verbose || len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
}

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// DisplaySequence writes the leading Fibonacci values to out, one per line,
// prefixed with their index. In quiet mode only the bare values are printed,
// for scripting.
//
// Parameters:
//   - out: The writer for the formatted sequence.
//   - seq: The values F(0)..F(len-1), as produced by fibonacci.Sequence.
//   - quiet: Suppresses indices and coloring when true.
func DisplaySequence(out io.Writer, seq []*big.Int, quiet bool) {
	if quiet {
		for _, v := range seq {
			fmt.Fprintln(out, v.String())
		}
		return
	}

	theme := ui.GetCurrentTheme()
	for i, v := range seq {
		fmt.Fprintf(out, "%s %s\n",
			ui.Colorize(theme.Secondary, fmt.Sprintf("F(%d) =", i)),
			v.String())
	}
}

// DisplayMembership writes the outcome of a Fibonacci-membership test.
// In quiet mode it prints "true" or "false" only.
//
// Parameters:
//   - out: The writer for the verdict.
//   - candidate: The tested value.
//   - member: Whether the candidate is a Fibonacci number.
//   - quiet: Minimal output for scripting when true.
func DisplayMembership(out io.Writer, candidate *big.Int, member bool, quiet bool) {
	if quiet {
		fmt.Fprintln(out, member)
		return
	}

	theme := ui.GetCurrentTheme()
	if member {
		fmt.Fprintf(out, "%s is a Fibonacci number %s\n",
			candidate.String(), ui.Colorize(theme.Success, "✓"))
	} else {
		fmt.Fprintf(out, "%s is not a Fibonacci number %s\n",
			candidate.String(), ui.Colorize(theme.Error, "✗"))
	}
}

// PrintExecutionConfig writes a short banner describing the evaluation about
// to run.
//
// Parameters:
//   - out: The writer for the banner.
//   - n: The Fibonacci index to evaluate.
//   - algo: The selected strategy name ("all" for a comparison run).
//   - timeout: The configured evaluation timeout.
func PrintExecutionConfig(out io.Writer, n uint64, algo string, timeout time.Duration) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "%s\n", ui.Colorize(theme.Bold, fmt.Sprintf("Evaluating F(%d)", n)))
	fmt.Fprintf(out, "  Strategy: %s\n", algo)
	fmt.Fprintf(out, "  Timeout:  %s\n", timeout)
}

// WriteResultToFile writes an evaluation result to a file.
//
// Parameters:
//   - result: The computed Fibonacci number.
//   - n: The index of the Fibonacci number.
//   - duration: The evaluation duration.
//   - algo: The strategy name used.
//   - config: Output configuration; no-op when OutputFile is empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result *big.Int, n uint64, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Fibonacci Evaluation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Strategy: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# N: %d\n", n)
	fmt.Fprintf(file, "# Bits: %d\n", result.BitLen())
	fmt.Fprintf(file, "# Digits: %d\n", len(result.String()))
	fmt.Fprintf(file, "\n")

	// Write result
	fmt.Fprintf(file, "F(%d) =\n%s\n", n, result.String())

	return nil
}
