// This file provides the count-bounded Generator for lazy, streaming
// production of the leading Fibonacci values.
package fibonacci

import (
	"context"
	"errors"
	"math/big"
)

// ErrGeneratorExhausted is returned by Generator.Next once the generator has
// produced all of the values it was created for.
var ErrGeneratorExhausted = errors.New("fibonacci: generator exhausted")

// Generator lazily produces the first `count` Fibonacci values in increasing
// index order, without materializing the whole sequence up front. It advances
// the same two-value rolling state as the iterative evaluator.
//
// A Generator is one-shot: once exhausted it keeps returning
// ErrGeneratorExhausted until Reset, which starts a fresh pass from F(0).
//
// Thread Safety:
// Generator is NOT safe for concurrent use. Each goroutine should have its
// own instance, or use external synchronization.
//
// Example:
//
//	gen := fibonacci.NewGenerator(10)
//	for {
//	    v, err := gen.Next(ctx)
//	    if errors.Is(err, fibonacci.ErrGeneratorExhausted) {
//	        break
//	    }
//	    // process v
//	}
type Generator struct {
	// current holds F(index) once the generator has started
	current *big.Int
	// next holds F(index+1) for efficient advancement
	next *big.Int
	// index is the position of current in the sequence
	index uint64
	// count is the total number of values this generator yields
	count int
	// produced counts values already handed out
	produced int
}

// NewGenerator creates a Generator that yields the first count Fibonacci
// values. A non-positive count produces an already-exhausted generator,
// mirroring the sequence builder's treatment of count ≤ 0 as empty.
//
// Parameters:
//   - count: The number of values to yield, starting at F(0).
//
// Returns:
//   - *Generator: A new generator positioned before F(0).
func NewGenerator(count int) *Generator {
	g := &Generator{count: count}
	g.Reset()
	return g
}

// Next advances the generator and returns the next Fibonacci value.
// The first call returns F(0), the second F(1), and so on, until count values
// have been produced.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//
// Returns:
//   - *big.Int: The next Fibonacci value. The returned value is a copy and is
//     safe to modify.
//   - error: ErrGeneratorExhausted once count values were produced, or the
//     context error if cancelled.
func (g *Generator) Next(ctx context.Context) (*big.Int, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if g.produced >= g.count {
		return nil, ErrGeneratorExhausted
	}

	if g.produced > 0 {
		// (current, next) = (next, current+next)
		g.index++
		g.current, g.next = g.next, new(big.Int).Add(g.current, g.next)
	}
	g.produced++

	return new(big.Int).Set(g.current), nil
}

// Current returns the most recently produced value without advancing.
// If Next has never been called (or Reset was just called), returns nil.
//
// Returns:
//   - *big.Int: A copy of the current value, or nil if not started.
func (g *Generator) Current() *big.Int {
	if g.produced == 0 {
		return nil
	}
	return new(big.Int).Set(g.current)
}

// Index returns the index of the most recently produced value.
// If Next has never been called, returns 0.
func (g *Generator) Index() uint64 {
	return g.index
}

// Remaining returns how many values the generator will still yield.
func (g *Generator) Remaining() int {
	if g.produced >= g.count {
		return 0
	}
	return g.count - g.produced
}

// Reset restarts the generator: the next call to Next returns F(0) again and
// the full count becomes available for another pass.
func (g *Generator) Reset() {
	g.current = big.NewInt(0)
	g.next = big.NewInt(1)
	g.index = 0
	g.produced = 0
}
