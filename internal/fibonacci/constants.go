package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Domain Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxFibUint64 = 93 because F(93) is the largest Fibonacci number that fits
	// in a uint64, as F(94) exceeds 2^64. This value is derived from the very
	// rapid growth of the sequence.
	MaxFibUint64 = 93 // Justified above

	// MaxRecursiveIndex is the largest index accepted by the naive recursive
	// evaluator. The naive recursion performs O(φ^n) calls (φ ≈ 1.618), so
	// F(50) already requires roughly 4×10^10 calls. Indices above this limit
	// are rejected with a validation error instead of silently running for an
	// astronomic amount of time. This is the documented domain limit of the
	// baseline algorithm, not a property of the sequence itself; the other
	// evaluators have no such limit.
	MaxRecursiveIndex = 50

	// ctxCheckInterval is the number of loop iterations between context
	// cancellation checks in the linear-time evaluators. Checking on every
	// iteration would dominate the cost of the cheap early iterations.
	ctxCheckInterval = 1024
)

// fibUint64 holds F(0)..F(93), every Fibonacci number representable in a
// uint64. The table doubles as a golden oracle in tests and backs FibUint64.
var fibUint64 = [MaxFibUint64 + 1]uint64{
	0, 1, 1, 2, 3, 5, 8, 13, 21, 34,
	55, 89, 144, 233, 377, 610, 987, 1597, 2584, 4181,
	6765, 10946, 17711, 28657, 46368, 75025, 121393, 196418, 317811, 514229,
	832040, 1346269, 2178309, 3524578, 5702887, 9227465, 14930352, 24157817, 39088169, 63245986,
	102334155, 165580141, 267914296, 433494437, 701408733, 1134903170, 1836311903, 2971215073, 4807526976, 7778742049,
	12586269025, 20365011074, 32951280099, 53316291173, 86267571272, 139583862445, 225851433717, 365435296162, 591286729879, 956722026041,
	1548008755920, 2504730781961, 4052739537881, 6557470319842, 10610209857723, 17167680177565, 27777890035288, 44945570212853, 72723460248141, 117669030460994,
	190392490709135, 308061521170129, 498454011879264, 806515533049393, 1304969544928657, 2111485077978050, 3416454622906707, 5527939700884757, 8944394323791464, 14472334024676221,
	23416728348467685, 37889062373143906, 61305790721611591, 99194853094755497, 160500643816367088, 259695496911122585, 420196140727489673, 679891637638612258, 1100087778366101931, 1779979416004714189,
	2880067194370816120, 4660046610375530309, 7540113804746346429, 12200160415121876738,
}

// FibUint64 returns F(n) as a uint64 for n ≤ MaxFibUint64.
// The second return value is false when n is outside the uint64 range of the
// sequence, in which case callers must fall back to an arbitrary-precision
// evaluator.
func FibUint64(n uint64) (uint64, bool) {
	if n > MaxFibUint64 {
		return 0, false
	}
	return fibUint64[n], true
}
