// This file provides the iterative evaluator: a single forward pass over the
// recurrence with a rolling two-value state.
package fibonacci

import (
	"context"
	"math/big"
)

// IterativeEvaluator computes F(n) in a single forward pass, maintaining only
// the last two values of the sequence.
//
// Performance Characteristics:
//   - O(n) additions, O(1) auxiliary state (two big.Int values)
//   - No domain limit beyond available memory; values grow without bound
//     at roughly 0.694 bits per index
//
// It produces results identical to the recursive evaluator for every index in
// the recursive evaluator's domain.
type IterativeEvaluator struct{}

// Name returns the name of the algorithm.
func (e *IterativeEvaluator) Name() string {
	return "Iterative (O(n), Constant Memory)"
}

// EvaluateCore executes the iterative computation of F(n).
// The loop checks the context every ctxCheckInterval iterations so large
// indices remain cancellable without paying a per-iteration select.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - n: The index of the Fibonacci number to compute.
//
// Returns:
//   - *big.Int: The computed Fibonacci number.
//   - error: The context error if the evaluation was cancelled.
func (e *IterativeEvaluator) EvaluateCore(ctx context.Context, n uint64) (*big.Int, error) {
	// a = F(i), b = F(i+1); advancing i from 0 to n.
	a, b := big.NewInt(0), big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		if i%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		// (a, b) = (b, a+b), reusing a's storage for the sum.
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}

// compile-time interface check
var _ evaluatorCore = (*IterativeEvaluator)(nil)
