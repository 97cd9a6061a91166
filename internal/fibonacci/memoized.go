// This file provides the memoized evaluator. The cache is an explicit,
// caller-owned object rather than hidden package state, so sharing it across
// call chains is a visible contract: the process-lifetime cache used by the
// default factory is simply the package-level SharedMemoizer instance.
package fibonacci

import (
	"context"
	"math/big"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	memoCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibseq_memo_cache_hits_total",
		Help: "Evaluations answered directly from the memoization cache",
	})
	memoCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibseq_memo_cache_misses_total",
		Help: "Evaluations that required computing at least one new entry",
	})
)

// Memoizer computes F(n) with the same dependency structure as the recursive
// evaluator, but caches every computed index so each value is derived exactly
// once per cache lifetime.
//
// Instead of call-stack recursion it walks an explicit descent stack, so the
// goroutine stack depth stays constant regardless of n. The cache is unbounded
// and never evicted: memory grows as O(n) entries for the largest index seen.
//
// Thread Safety:
// All methods are safe for concurrent use; a single mutex serializes cache
// access. Returned values are copies and never alias cache entries.
type Memoizer struct {
	mu    sync.Mutex
	cache map[uint64]*big.Int
}

// SharedMemoizer is the process-lifetime cache instance backing the
// "memoized" entry of the default factory. Its contents survive across
// evaluations for the life of the process and are only released by an
// explicit Clear.
var SharedMemoizer = NewMemoizer()

// NewMemoizer creates a Memoizer whose cache is seeded with the base cases
// F(0)=0 and F(1)=1.
//
// Returns:
//   - *Memoizer: A new memoizer with an empty (base-case only) cache.
func NewMemoizer() *Memoizer {
	m := &Memoizer{}
	m.reset()
	return m
}

// reset reinstalls the base cases. Caller must hold mu (or own the instance
// exclusively, as in NewMemoizer).
func (m *Memoizer) reset() {
	m.cache = map[uint64]*big.Int{
		0: big.NewInt(0),
		1: big.NewInt(1),
	}
}

// Name returns the name of the algorithm.
func (m *Memoizer) Name() string {
	return "Memoized (O(n), Explicit Cache)"
}

// Evaluate computes F(n), filling the cache with every index on the descent
// path that was not already present.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - n: The index of the Fibonacci number to compute.
//
// Returns:
//   - *big.Int: A copy of the computed Fibonacci number.
//   - error: The context error if the evaluation was cancelled. The cache is
//     left in a consistent state: entries computed before cancellation are kept.
func (m *Memoizer) Evaluate(ctx context.Context, n uint64) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.cache[n]; ok {
		memoCacheHits.Inc()
		return new(big.Int).Set(v), nil
	}
	memoCacheMisses.Inc()

	// Explicit descent stack instead of call-stack recursion: an index is
	// popped once both of its dependencies are cached, mirroring the shape of
	// the recursive evaluation without its stack-depth hazard.
	stack := []uint64{n}
	steps := 0
	for len(stack) > 0 {
		if steps%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		steps++

		k := stack[len(stack)-1]
		if _, ok := m.cache[k]; ok {
			stack = stack[:len(stack)-1]
			continue
		}

		prev1, ok1 := m.cache[k-1]
		prev2, ok2 := m.cache[k-2]
		if ok1 && ok2 {
			m.cache[k] = new(big.Int).Add(prev1, prev2)
			stack = stack[:len(stack)-1]
			continue
		}
		if !ok1 {
			stack = append(stack, k-1)
		}
		if !ok2 {
			stack = append(stack, k-2)
		}
	}

	return new(big.Int).Set(m.cache[n]), nil
}

// EvaluateCore adapts the Memoizer to the evaluatorCore interface so it can
// be wrapped by the metrics decorator like every other strategy.
func (m *Memoizer) EvaluateCore(ctx context.Context, n uint64) (*big.Int, error) {
	return m.Evaluate(ctx, n)
}

// Clear discards all cached values and reinstalls the base cases.
// Subsequent evaluations recompute from scratch; results are unaffected.
func (m *Memoizer) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

// Len returns the number of cached entries, including the two base cases.
//
// Returns:
//   - int: The current cache size.
func (m *Memoizer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

// compile-time interface check
var _ evaluatorCore = (*Memoizer)(nil)
