package fibonacci

import (
	"context"
	"math/big"
	"testing"
)

// TestSequence_LeadingValues checks the builder's output for small counts,
// including the edge cases around zero.
func TestSequence_LeadingValues(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []int64
	}{
		{"negative", -5, []int64{}},
		{"zero", 0, []int64{}},
		{"one", 1, []int64{0}},
		{"two", 2, []int64{0, 1}},
		{"ten", 10, []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sequence(tt.count)
			if got == nil {
				t.Fatal("Sequence returned nil, want non-nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Sequence(%d) has %d elements, want %d", tt.count, len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].Cmp(big.NewInt(want)) != 0 {
					t.Errorf("Sequence(%d)[%d] = %s, want %d", tt.count, i, got[i], want)
				}
			}
		})
	}
}

// TestSequence_AgreesWithIterative verifies each element equals the iterative
// evaluator applied at its index.
func TestSequence_AgreesWithIterative(t *testing.T) {
	ctx := context.Background()
	iterative := &IterativeEvaluator{}

	seq := Sequence(120)
	for i, v := range seq {
		want, err := iterative.EvaluateCore(ctx, uint64(i))
		if err != nil {
			t.Fatalf("iterative F(%d): %v", i, err)
		}
		if v.Cmp(want) != 0 {
			t.Errorf("Sequence(120)[%d] = %s, want %s", i, v, want)
		}
	}
}

// TestSequence_IndependentElements ensures mutating one element leaves the
// rest intact, guarding against shared big.Int storage.
func TestSequence_IndependentElements(t *testing.T) {
	seq := Sequence(10)
	seq[3].SetInt64(-42)

	if seq[4].Cmp(big.NewInt(3)) != 0 {
		t.Errorf("element 4 = %s after mutating element 3, want 3", seq[4])
	}
	if seq[5].Cmp(big.NewInt(5)) != 0 {
		t.Errorf("element 5 = %s after mutating element 3, want 5", seq[5])
	}
}
