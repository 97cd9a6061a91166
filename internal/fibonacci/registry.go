package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// EvaluatorFactory is an interface for creating Evaluator instances.
// It allows for flexible evaluator instantiation and registration, enabling
// dependency injection and easier testing.
type EvaluatorFactory interface {
	// Create creates a new Evaluator instance by name.
	// Returns an error if the strategy is not registered.
	Create(name string) (Evaluator, error)

	// Get returns a cached Evaluator instance by name.
	// Returns an error if the strategy is not registered.
	Get(name string) (Evaluator, error)

	// List returns a sorted list of registered strategy names.
	List() []string

	// Register adds a new strategy to the factory.
	Register(name string, creator func() evaluatorCore) error

	// GetAll returns a map of all registered evaluators.
	GetAll() map[string]Evaluator
}

// extraEvaluators collects strategies registered from package init functions,
// such as the GMP-backed evaluator behind its build tag. They are folded into
// every factory created by NewDefaultFactory.
var (
	extraMu         sync.Mutex
	extraEvaluators = map[string]func() evaluatorCore{}
)

// RegisterEvaluator registers a strategy for inclusion in all subsequently
// created default factories. It is intended for init-time registration by
// conditionally compiled strategies.
func RegisterEvaluator(name string, creator func() evaluatorCore) {
	extraMu.Lock()
	defer extraMu.Unlock()
	extraEvaluators[name] = creator
}

// DefaultFactory is the default implementation of EvaluatorFactory.
// It maintains a thread-safe registry of strategy creators and caches
// Evaluator instances for reuse.
type DefaultFactory struct {
	mu         sync.RWMutex
	creators   map[string]func() evaluatorCore
	evaluators map[string]Evaluator
}

// NewDefaultFactory creates a new DefaultFactory with the standard
// computation strategies pre-registered.
//
// Pre-registered strategies:
//   - "recursive": RecursiveEvaluator (O(2^n), naive baseline)
//   - "iterative": IterativeEvaluator (O(n), constant memory)
//   - "memoized": the process-lifetime SharedMemoizer (O(n), cached)
//   - "gmp": GMP-backed iterative evaluator (only with the gmp build tag)
//
// Returns:
//   - *DefaultFactory: A new factory with the default strategies registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:   make(map[string]func() evaluatorCore),
		evaluators: make(map[string]Evaluator),
	}

	_ = f.Register("recursive", func() evaluatorCore { return &RecursiveEvaluator{} })
	_ = f.Register("iterative", func() evaluatorCore { return &IterativeEvaluator{} })
	_ = f.Register("memoized", func() evaluatorCore { return SharedMemoizer })

	extraMu.Lock()
	for name, creator := range extraEvaluators {
		_ = f.Register(name, creator)
	}
	extraMu.Unlock()

	return f
}

// Register adds a new strategy to the factory.
// The creator function is called lazily when the evaluator is first requested.
// If a strategy with the same name already exists, it is replaced.
//
// Parameters:
//   - name: The unique identifier for the strategy.
//   - creator: A function that creates a new evaluatorCore instance.
func (f *DefaultFactory) Register(name string, creator func() evaluatorCore) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	// Drop any cached evaluator so it is recreated with the new creator
	delete(f.evaluators, name)
	return nil
}

// Create creates a new Evaluator instance by name.
// Unlike Get, this always creates a fresh instance without caching.
//
// Parameters:
//   - name: The name of the strategy to create.
//
// Returns:
//   - Evaluator: A new Evaluator instance.
//   - error: An error if the strategy is not registered.
func (f *DefaultFactory) Create(name string) (Evaluator, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown evaluator: %s", name)
	}
	return NewEvaluator(creator()), nil
}

// Get returns an Evaluator instance by name.
// Instances are cached and reused for subsequent calls with the same name.
// This is the preferred method for most use cases.
//
// Parameters:
//   - name: The name of the evaluator to retrieve.
//
// Returns:
//   - Evaluator: The Evaluator instance.
//   - error: An error if the strategy is not registered.
func (f *DefaultFactory) Get(name string) (Evaluator, error) {
	f.mu.RLock()
	if ev, exists := f.evaluators[name]; exists {
		f.mu.RUnlock()
		return ev, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring the write lock
	if ev, exists := f.evaluators[name]; exists {
		return ev, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator: %s", name)
	}

	ev := NewEvaluator(creator())
	f.evaluators[name] = ev
	return ev, nil
}

// List returns a sorted list of all registered strategy names.
//
// Returns:
//   - []string: An alphabetically sorted slice of strategy names.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered evaluator, keyed by strategy name.
// Instances are created (and cached) on demand.
//
// Returns:
//   - map[string]Evaluator: All registered evaluators.
func (f *DefaultFactory) GetAll() map[string]Evaluator {
	all := make(map[string]Evaluator, len(f.List()))
	for _, name := range f.List() {
		ev, err := f.Get(name)
		if err != nil {
			continue
		}
		all[name] = ev
	}
	return all
}

// compile-time interface check
var _ EvaluatorFactory = (*DefaultFactory)(nil)
