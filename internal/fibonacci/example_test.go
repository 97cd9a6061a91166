package fibonacci_test

import (
	"context"
	"fmt"
	"math/big"

	"github.com/agbru/fibseq/internal/fibonacci"
)

func ExampleNewEvaluator() {
	ev := fibonacci.NewEvaluator(&fibonacci.IterativeEvaluator{})

	result, err := ev.Evaluate(context.Background(), 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output: 55
}

func ExampleDefaultFactory_Get() {
	factory := fibonacci.NewDefaultFactory()

	ev, err := factory.Get("memoized")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	result, err := ev.Evaluate(context.Background(), 20)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output: 6765
}

func ExampleSequence() {
	for _, v := range fibonacci.Sequence(8) {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 0 1 1 2 3 5 8 13
}

func ExampleGenerator() {
	gen := fibonacci.NewGenerator(5)
	for {
		v, err := gen.Next(context.Background())
		if err != nil {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 0
	// 1
	// 1
	// 2
	// 3
}

func ExampleIsFibonacci() {
	fmt.Println(fibonacci.IsFibonacci(big.NewInt(21)))
	fmt.Println(fibonacci.IsFibonacci(big.NewInt(22)))
	// Output:
	// true
	// false
}
