// This file provides the sequence builder, the eager counterpart of the
// Generator.
package fibonacci

import "math/big"

// Sequence returns the first count Fibonacci values in index order.
// It is the eager equivalent of draining NewGenerator(count): the two always
// agree element-wise, and each element equals the iterative evaluator applied
// at its index.
//
// Edge cases: count ≤ 0 yields an empty (non-nil) slice, count == 1 yields
// [0], count == 2 yields [0, 1].
//
// Parameters:
//   - count: The number of leading Fibonacci values to materialize.
//
// Returns:
//   - []*big.Int: The values F(0) .. F(count-1). Elements are independent
//     copies, safe for callers to modify.
func Sequence(count int) []*big.Int {
	if count <= 0 {
		return []*big.Int{}
	}

	seq := make([]*big.Int, 0, count)
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < count; i++ {
		seq = append(seq, new(big.Int).Set(a))
		// (a, b) = (b, a+b), reusing a's storage for the sum.
		a.Add(a, b)
		a, b = b, a
	}
	return seq
}
