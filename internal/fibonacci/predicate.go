// This file provides the Fibonacci-membership predicate, based on the
// classical perfect-square characterization of the sequence.
package fibonacci

import "math/big"

// IsFibonacci reports whether num appears somewhere in the infinite Fibonacci
// sequence.
//
// A non-negative integer num is a Fibonacci number if and only if
// 5*num² + 4 or 5*num² - 4 is a perfect square (Gessel's test). The check is
// exact at arbitrary precision, so it classifies candidates far beyond the
// uint64 range of the sequence. Negative candidates are never Fibonacci
// numbers.
//
// Parameters:
//   - num: The candidate value. A nil candidate is treated as not a member.
//
// Returns:
//   - bool: true if num is a Fibonacci number.
func IsFibonacci(num *big.Int) bool {
	if num == nil || num.Sign() < 0 {
		return false
	}

	five := big.NewInt(5)
	four := big.NewInt(4)

	sq := new(big.Int).Mul(num, num)
	sq.Mul(sq, five)

	plus := new(big.Int).Add(sq, four)
	minus := new(big.Int).Sub(sq, four)
	return isPerfectSquare(plus) || isPerfectSquare(minus)
}

// IsFibonacciUint64 is a convenience wrapper of IsFibonacci for native
// integer candidates.
func IsFibonacciUint64(num uint64) bool {
	return IsFibonacci(new(big.Int).SetUint64(num))
}

// isPerfectSquare reports whether z is the square of some integer.
// It computes the floor square root and checks that squaring it reproduces z
// exactly. Negative inputs are always false; this guards the 5*num²-4 branch
// of IsFibonacci for num ∈ {0, 1}.
func isPerfectSquare(z *big.Int) bool {
	if z.Sign() < 0 {
		return false
	}
	root := new(big.Int).Sqrt(z)
	return new(big.Int).Mul(root, root).Cmp(z) == 0
}
