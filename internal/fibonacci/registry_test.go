package fibonacci

import (
	"context"
	"math/big"
	"sort"
	"testing"
)

// TestDefaultFactory_List verifies the standard strategies are registered and
// reported in sorted order.
func TestDefaultFactory_List(t *testing.T) {
	f := NewDefaultFactory()
	names := f.List()

	if !sort.StringsAreSorted(names) {
		t.Errorf("List() = %v, want sorted order", names)
	}

	registered := make(map[string]bool, len(names))
	for _, n := range names {
		registered[n] = true
	}
	for _, want := range []string{"recursive", "iterative", "memoized"} {
		if !registered[want] {
			t.Errorf("List() = %v, missing %q", names, want)
		}
	}
}

// TestDefaultFactory_GetCaches verifies Get returns the same instance for
// repeated calls with the same name.
func TestDefaultFactory_GetCaches(t *testing.T) {
	f := NewDefaultFactory()

	first, err := f.Get("iterative")
	if err != nil {
		t.Fatalf("Get(iterative): %v", err)
	}
	second, err := f.Get("iterative")
	if err != nil {
		t.Fatalf("Get(iterative) second call: %v", err)
	}
	if first != second {
		t.Error("Get returned distinct instances for the same name")
	}
}

// TestDefaultFactory_CreateIsFresh verifies Create returns distinct instances
// on each call, independent of the Get cache.
func TestDefaultFactory_CreateIsFresh(t *testing.T) {
	f := NewDefaultFactory()

	first, err := f.Create("iterative")
	if err != nil {
		t.Fatalf("Create(iterative): %v", err)
	}
	second, err := f.Create("iterative")
	if err != nil {
		t.Fatalf("Create(iterative) second call: %v", err)
	}
	if first == second {
		t.Error("Create returned the same instance twice")
	}
}

// TestDefaultFactory_UnknownStrategy verifies lookup failures.
func TestDefaultFactory_UnknownStrategy(t *testing.T) {
	f := NewDefaultFactory()

	if _, err := f.Get("closed-form"); err == nil {
		t.Error("Get(closed-form) succeeded, want error")
	}
	if _, err := f.Create("closed-form"); err == nil {
		t.Error("Create(closed-form) succeeded, want error")
	}
}

// fixedCore is a stub strategy returning a constant, used to test
// registration and override behavior.
type fixedCore struct{ value int64 }

func (c *fixedCore) EvaluateCore(ctx context.Context, n uint64) (*big.Int, error) {
	return big.NewInt(c.value), nil
}

func (c *fixedCore) Name() string { return "Fixed (test stub)" }

// TestDefaultFactory_RegisterOverride verifies a re-registered name replaces
// the previous creator and drops the cached instance.
func TestDefaultFactory_RegisterOverride(t *testing.T) {
	ctx := context.Background()
	f := NewDefaultFactory()

	// Warm the cache with the real strategy.
	if _, err := f.Get("iterative"); err != nil {
		t.Fatalf("Get(iterative): %v", err)
	}

	if err := f.Register("iterative", func() evaluatorCore { return &fixedCore{value: 7} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	ev, err := f.Get("iterative")
	if err != nil {
		t.Fatalf("Get after override: %v", err)
	}
	got, err := ev.Evaluate(ctx, 30)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("overridden strategy returned %s, want 7", got)
	}
}

// TestDefaultFactory_GetAll verifies every listed strategy resolves to a
// working evaluator.
func TestDefaultFactory_GetAll(t *testing.T) {
	ctx := context.Background()
	f := NewDefaultFactory()

	all := f.GetAll()
	if len(all) != len(f.List()) {
		t.Fatalf("GetAll returned %d evaluators, List has %d names", len(all), len(f.List()))
	}
	for name, ev := range all {
		got, err := ev.Evaluate(ctx, 10)
		if err != nil {
			t.Errorf("%s: Evaluate(10): %v", name, err)
			continue
		}
		if got.Cmp(big.NewInt(55)) != 0 {
			t.Errorf("%s: Evaluate(10) = %s, want 55", name, got)
		}
	}
}
