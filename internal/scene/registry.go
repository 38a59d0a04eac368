package scene

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a fresh scene instance.
type Factory func() Scene

// Registry maps scene IDs to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[ID]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[ID]Factory)}
}

// Register adds a scene factory.
// Panics if the ID is a control value or already registered.
func (r *Registry) Register(id ID, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id.IsControl() {
		panic(fmt.Sprintf("scene: cannot register control id %s", id))
	}
	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("scene: %s already registered", id))
	}
	r.factories[id] = f
}

// Create instantiates the scene registered under id.
func (r *Registry) Create(id ID) (Scene, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScene, id)
	}
	return f(), nil
}

// Exists checks if a scene is registered under id.
func (r *Registry) Exists(id ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// List returns the registered IDs in order.
func (r *Registry) List() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]ID, 0, len(r.factories))
	for id := range r.factories {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}
