//go:build gmp

// This file provides a GMP-based iterative evaluator, conditionally compiled
// with the "gmp" build tag. The build tag architecture ensures that:
//   - The module builds without GMP by default (using math/big)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//   - Windows: Requires MinGW or WSL with libgmp
//
// The direct use of github.com/ncw/gmp in this file is intentional. An
// abstract big-integer interface would cost an indirection on every addition,
// which is the entire work of the iterative pass; the build tag approach
// provides clean separation without runtime cost.

package fibonacci

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	RegisterEvaluator("gmp", func() evaluatorCore { return &GMPIterativeEvaluator{} })
}

// GMPIterativeEvaluator implements the iterative strategy on top of the GMP
// library. It requires the 'gmp' build tag and libgmp installed on the
// system. The algorithm is identical to IterativeEvaluator; only the
// arithmetic backend differs.
//
// Performance Characteristics:
//   - GMP's assembly-optimized addition outpaces math/big once values reach
//     tens of thousands of bits (indices in the tens of thousands)
//   - For small indices, CGO call overhead makes math/big faster
type GMPIterativeEvaluator struct{}

// Name returns the name of the algorithm.
func (e *GMPIterativeEvaluator) Name() string {
	return "GMP Iterative (O(n), libgmp)"
}

// EvaluateCore executes the iterative computation of F(n) on GMP integers
// and converts the result back to a standard library big.Int.
func (e *GMPIterativeEvaluator) EvaluateCore(ctx context.Context, n uint64) (*big.Int, error) {
	a := gmp.NewInt(0)
	b := gmp.NewInt(1)
	for i := uint64(0); i < n; i++ {
		if i%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		a.Add(a, b)
		a, b = b, a
	}
	return new(big.Int).SetBytes(a.Bytes()), nil
}

// compile-time interface check
var _ evaluatorCore = (*GMPIterativeEvaluator)(nil)
