package asset

import (
	"fmt"
	"sync"
)

// Registry is a thread-safe registry of known assets.
type Registry struct {
	byKey    map[ClassKey]*Asset
	bySymbol map[string]*Asset
	mu       sync.RWMutex
}

// NewRegistry creates a new empty asset registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:    make(map[ClassKey]*Asset),
		bySymbol: make(map[string]*Asset),
	}
}

// Register adds an asset to the registry.
// Panics if an asset with the same class key or symbol is already registered.
func (r *Registry) Register(a *Asset) {
	if a == nil {
		panic("asset: cannot register nil asset")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := a.Key()
	if _, exists := r.byKey[key]; exists {
		panic(fmt.Sprintf("asset: %s already registered", key))
	}
	if _, exists := r.bySymbol[a.Symbol()]; exists {
		panic(fmt.Sprintf("asset: symbol %s already registered", a.Symbol()))
	}

	r.byKey[key] = a
	r.bySymbol[a.Symbol()] = a
}

// Get retrieves an asset by its class key.
func (r *Registry) Get(key ClassKey) (*Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byKey[key]
	return a, ok
}

// MustGet retrieves an asset by its class key, panics if not found.
func (r *Registry) MustGet(key ClassKey) *Asset {
	a, ok := r.Get(key)
	if !ok {
		panic(fmt.Sprintf("asset: %s not found in registry", key))
	}
	return a
}

// GetBySymbol retrieves an asset by ticker symbol.
func (r *Registry) GetBySymbol(symbol string) (*Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.bySymbol[symbol]
	return a, ok
}

// All returns all registered assets.
func (r *Registry) All() []*Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Asset, 0, len(r.byKey))
	for _, a := range r.byKey {
		result = append(result, a)
	}
	return result
}

// Count returns the number of registered assets.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKey)
}
