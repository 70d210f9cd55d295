package viz

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for registry operations.
var (
	// ErrUnknownID is returned when looking up an unregistered visualizer.
	ErrUnknownID = errors.New("viz: unknown visualizer id")

	// ErrDuplicateID is returned when registering an already-taken id.
	ErrDuplicateID = errors.New("viz: duplicate visualizer id")

	// ErrNilFactory is returned when registering a nil factory.
	ErrNilFactory = errors.New("viz: nil visualizer factory")
)

// Factory constructs a fresh Visualizer instance.
type Factory func() Visualizer

// Registry is a concurrency-safe catalog of visualizer factories keyed
// by string ID, with synchronous subscriber notification on
// registration.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	subs      map[int]func(id string)
	nextSub   int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		subs:      make(map[int]func(id string)),
	}
}

// defaultRegistry is the process-wide catalog populated by RegisterAll.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds a factory under id and notifies subscribers.
// Returns ErrDuplicateID if id is taken, ErrNilFactory for a nil factory.
func (r *Registry) Register(id string, f Factory) error {
	if f == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, id)
	}

	r.mu.Lock()
	if _, exists := r.factories[id]; exists {
		r.mu.Unlock()

		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	r.factories[id] = f
	// Copy subscribers so callbacks run outside the lock.
	subs := make([]func(string), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}

	return nil
}

// Lookup instantiates the visualizer registered under id.
func (r *Registry) Lookup(id string) (Visualizer, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownID, id)
	}

	return f(), nil
}

// IDs returns all registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// Subscribe registers fn to be called with each newly registered id.
// The returned disposer removes the subscription; it is safe to call
// from within the callback itself.
func (r *Registry) Subscribe(fn func(id string)) func() {
	r.mu.Lock()
	key := r.nextSub
	r.nextSub++
	r.subs[key] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, key)
		r.mu.Unlock()
	}
}
