package analysis

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/abdullahfazal969-alt/News-agent/internal/errors"
)

// Factory resolves strategy names from flags or settings into Strategy
// instances. It is safe for concurrent use.
type Factory struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewFactory creates an empty factory.
func NewFactory() *Factory {
	return &Factory{strategies: make(map[string]Strategy)}
}

// NewDefaultFactory creates a factory with the built-in strategies
// registered: "summarize" (the default) and "keywords".
func NewDefaultFactory() *Factory {
	f := NewFactory()
	// Registration of built-ins cannot collide.
	_ = f.Register("summarize", NewSummarizeCategorize())
	_ = f.Register("keywords", NewKeywordExtract())
	return f
}

// Register adds a strategy under the given lookup name. It fails when the
// name is already taken so a typo cannot silently shadow a built-in.
func (f *Factory) Register(name string, strategy Strategy) error {
	if name == "" || strategy == nil {
		return apperrors.NewConfigError("strategy registration requires a name and an implementation")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.strategies[name]; exists {
		return apperrors.NewConfigError("strategy %q is already registered", name)
	}
	f.strategies[name] = strategy
	return nil
}

// Get returns the strategy registered under name.
func (f *Factory) Get(name string) (Strategy, error) {
	f.mu.RLock()
	strategy, ok := f.strategies[name]
	f.mu.RUnlock()

	if !ok {
		return nil, apperrors.ValidationError{
			Field:   "strategy",
			Message: fmt.Sprintf("unknown strategy %q (available: %s)", name, strings.Join(f.List(), ", ")),
		}
	}
	return strategy, nil
}

// List returns the registered strategy names in sorted order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.strategies))
	for name := range f.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
