// Package fibonacci implements the Fibonacci sequence engine.
// It exposes an `Evaluator` interface that abstracts the underlying
// computation strategy, allowing the recursive, iterative and memoized
// evaluators to be used interchangeably, plus a count-bounded Generator,
// a Sequence builder and the Fibonacci-membership predicate. All strategies
// implement the same recurrence F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2) and must
// agree on F(n) for every index in their shared domain.
package fibonacci

import (
	"context"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibseq_evaluations_total",
			Help: "The total number of Fibonacci evaluations processed",
		},
		[]string{"algorithm", "status"},
	)
	evaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fibseq_evaluation_duration_seconds",
			Help: "The duration of Fibonacci evaluations in seconds",
		},
		[]string{"algorithm"},
	)
)

// Evaluator defines the public interface for a Fibonacci evaluator.
// It is the primary abstraction used by the orchestration layer to interact
// with the different computation strategies.
type Evaluator interface {
	// Evaluate computes the n-th Fibonacci number (zero-indexed, F(0)=0).
	// It supports cancellation through the provided context so that a CLI
	// timeout can interrupt long evaluations.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - n: The index of the Fibonacci number to compute.
	//
	// Returns:
	//   - *big.Int: The computed Fibonacci number. Callers own the returned
	//     value; it never aliases evaluator-internal state.
	//   - error: An error if one occurred (context cancellation, or an index
	//     outside the strategy's documented domain).
	Evaluate(ctx context.Context, n uint64) (*big.Int, error)

	// Name returns the display name of the computation strategy.
	Name() string
}

// evaluatorCore defines the internal interface for a pure computation
// strategy, without the cross-cutting concerns added by the decorator.
type evaluatorCore interface {
	EvaluateCore(ctx context.Context, n uint64) (*big.Int, error)
	Name() string
}

// FibEvaluator is an implementation of the Evaluator interface that uses the
// Decorator design pattern. It wraps an evaluatorCore to add cross-cutting
// concerns: an up-front cancellation check and Prometheus instrumentation
// (per-algorithm counters and latency histograms).
type FibEvaluator struct {
	core evaluatorCore
}

// NewEvaluator constructs a new FibEvaluator around the given core strategy.
// This function panics if the core evaluator is nil, ensuring system
// integrity.
//
// Parameters:
//   - core: The core strategy to be wrapped.
//
// Returns:
//   - Evaluator: A new FibEvaluator instance implementing the Evaluator interface.
func NewEvaluator(core evaluatorCore) Evaluator {
	if core == nil {
		panic("fibonacci: the `evaluatorCore` implementation cannot be nil")
	}
	return &FibEvaluator{core: core}
}

// Name returns the name of the encapsulated core strategy.
func (e *FibEvaluator) Name() string {
	return e.core.Name()
}

// Evaluate delegates to the wrapped core strategy and records evaluation
// metrics. A context that is already cancelled fails fast without entering
// the core algorithm.
func (e *FibEvaluator) Evaluate(ctx context.Context, n uint64) (*big.Int, error) {
	start := time.Now()

	var result *big.Int
	err := ctx.Err()
	if err == nil {
		result, err = e.core.EvaluateCore(ctx, n)
	}

	status := "success"
	if err != nil {
		status = "error"
	}
	evaluationsTotal.WithLabelValues(e.core.Name(), status).Inc()
	evaluationDuration.WithLabelValues(e.core.Name()).Observe(time.Since(start).Seconds())

	return result, err
}
