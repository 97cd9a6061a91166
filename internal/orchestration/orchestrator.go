// Package orchestration coordinates the concurrent execution of the
// computation strategies and the cross-checking of their results. The
// agreement of all strategies on F(n) is the engine's core correctness
// property; this package is where it is enforced at runtime.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fibonacci"
)

var tracer = otel.Tracer("github.com/agbru/fibseq/internal/orchestration")

// EvaluationResult encapsulates the outcome of a single Fibonacci evaluation.
// It serves as a standardized container for results from different strategies,
// facilitating comparison and reporting.
type EvaluationResult struct {
	// Name is the identifier of the strategy used (e.g., "Iterative").
	Name string
	// Result is the computed Fibonacci number. It is nil if an error occurred.
	Result *big.Int
	// Duration is the time taken to complete the evaluation.
	Duration time.Duration
	// Err contains any error that occurred during the evaluation.
	Err error
}

// ResultPresenter abstracts the rendering of evaluation results, decoupling
// the orchestration logic from the CLI presentation layer.
type ResultPresenter interface {
	// PresentComparisonTable renders the per-strategy outcome table.
	PresentComparisonTable(results []EvaluationResult, out io.Writer)

	// PresentResult renders the final agreed-upon value.
	PresentResult(result EvaluationResult, n uint64, out io.Writer)

	// HandleError renders err and returns the matching process exit code.
	HandleError(err error, out io.Writer) int
}

// GetEvaluatorsToRun resolves the algo selection into concrete evaluators.
// "all" returns every registered strategy in name order; any other value
// selects the single matching strategy.
//
// Parameters:
//   - algo: The strategy name, or "all".
//   - factory: The evaluator factory to resolve names against.
//
// Returns:
//   - []fibonacci.Evaluator: The evaluators to execute. Empty if algo does
//     not name a registered strategy.
func GetEvaluatorsToRun(algo string, factory fibonacci.EvaluatorFactory) []fibonacci.Evaluator {
	if algo == "all" {
		all := factory.GetAll()
		names := make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
		sort.Strings(names)

		evaluators := make([]fibonacci.Evaluator, 0, len(names))
		for _, name := range names {
			evaluators = append(evaluators, all[name])
		}
		return evaluators
	}

	ev, err := factory.Get(algo)
	if err != nil {
		return nil
	}
	return []fibonacci.Evaluator{ev}
}

// ExecuteEvaluations orchestrates the concurrent execution of one or more
// Fibonacci evaluations for the same index.
//
// Each evaluator runs in its own goroutine; a failing strategy records its
// error in the corresponding slot rather than aborting the others, so the
// comparison report always covers every requested strategy. The engine
// itself stays synchronous: concurrency lives entirely in this layer, and
// the shared memoizer is safe to reach from here because its cache access
// is serialized internally.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - evaluators: The strategies to execute.
//   - n: The Fibonacci index to evaluate with every strategy.
//
// Returns:
//   - []EvaluationResult: One result per evaluator, in input order.
func ExecuteEvaluations(ctx context.Context, evaluators []fibonacci.Evaluator, n uint64) []EvaluationResult {
	ctx, span := tracer.Start(ctx, "orchestration.ExecuteEvaluations",
		trace.WithAttributes(
			attribute.Int64("fibseq.index", int64(n)),
			attribute.Int("fibseq.evaluators", len(evaluators)),
		))
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	results := make([]EvaluationResult, len(evaluators))

	for i, ev := range evaluators {
		idx, evaluator := i, ev
		g.Go(func() error {
			startTime := time.Now()
			res, err := evaluator.Evaluate(ctx, n)
			results[idx] = EvaluationResult{
				Name: evaluator.Name(), Result: res, Duration: time.Since(startTime), Err: err,
			}
			// Errors are captured per-result; never abort sibling strategies.
			return nil
		})
	}

	g.Wait()
	return results
}

// AnalyzeComparisonResults processes the results from multiple strategies and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful evaluations, and displays a comparative table. A disagreement
// between any two successful strategies is a critical failure: it means the
// engine's defining invariant is broken.
//
// Parameters:
//   - results: The slice of evaluation results to analyze.
//   - n: The evaluated Fibonacci index.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []EvaluationResult, n uint64, presenter ResultPresenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *EvaluationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the evaluation.\n")
		return presenter.HandleError(firstError, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && res.Result.Cmp(firstValidResult.Result) != 0 {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the strategies.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, n, out)
	return apperrors.ExitSuccess
}
