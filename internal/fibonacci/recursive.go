// This file provides the naive recursive evaluator, kept as the exponential
// baseline against which the other strategies are contrasted.
package fibonacci

import (
	"context"
	"math/big"
	"strconv"

	apperrors "github.com/agbru/fibseq/internal/errors"
)

// RecursiveEvaluator computes F(n) by direct recursion on the mathematical
// recurrence, with no sharing of subresults between the two branches.
//
// Performance Characteristics:
//   - O(φ^n) time (two recursive calls per step), O(n) call-stack depth
//   - Intentionally unoptimized: it exists as the reference baseline
//   - Indices above MaxRecursiveIndex are rejected with a ValidationError,
//     because the exponential call tree would effectively never terminate
//
// The recursion checks the context on every call so that a timeout or SIGINT
// interrupts an in-flight evaluation promptly.
type RecursiveEvaluator struct{}

// Name returns the name of the algorithm.
func (e *RecursiveEvaluator) Name() string {
	return "Recursive (O(2^n), Naive Baseline)"
}

// EvaluateCore executes the naive recursive computation of F(n).
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - n: The index of the Fibonacci number to compute. Must be ≤ MaxRecursiveIndex.
//
// Returns:
//   - *big.Int: The computed Fibonacci number.
//   - error: A ValidationError if n exceeds the recursive domain limit, or
//     the context error if the evaluation was cancelled.
func (e *RecursiveEvaluator) EvaluateCore(ctx context.Context, n uint64) (*big.Int, error) {
	if n > MaxRecursiveIndex {
		return nil, apperrors.ValidationError{
			Field:   "n",
			Message: "index exceeds the recursive evaluator's domain limit of " + strconv.Itoa(MaxRecursiveIndex),
		}
	}
	return e.recurse(ctx, n)
}

// recurse is the recursion proper: F(n) = F(n-1) + F(n-2) with base cases
// F(0)=0 and F(1)=1.
func (e *RecursiveEvaluator) recurse(ctx context.Context, n uint64) (*big.Int, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if n <= 1 {
		return new(big.Int).SetUint64(n), nil
	}

	a, err := e.recurse(ctx, n-1)
	if err != nil {
		return nil, err
	}
	b, err := e.recurse(ctx, n-2)
	if err != nil {
		return nil, err
	}
	return a.Add(a, b), nil
}

// compile-time interface check
var _ evaluatorCore = (*RecursiveEvaluator)(nil)
