package actions

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/aretw0/reducto/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Registry manages the named action kinds.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]domain.Kind
	names map[domain.Kind]string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[string]domain.Kind),
		names: make(map[domain.Kind]string),
	}
}

// Register adds the action type A under name.
// A must be a struct type; each name and each kind can be registered only once.
func Register[A any](r *Registry, name string) error {
	kind := domain.KindFor[A]()
	if kind.Kind() != reflect.Struct {
		return fmt.Errorf("register %q: %s is not a struct: %w", name, kind, domain.ErrAbstractKind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.kinds[name]; ok {
		return fmt.Errorf("register %q: already bound to %s: %w", name, existing, domain.ErrDuplicateHandler)
	}
	if existing, ok := r.names[kind]; ok {
		return fmt.Errorf("register %q: %s already registered as %q: %w", name, kind, existing, domain.ErrDuplicateHandler)
	}

	r.kinds[name] = kind
	r.names[kind] = name
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister[A any](r *Registry, name string) {
	if err := Register[A](r, name); err != nil {
		panic(err)
	}
}

// Decode builds the action registered under name from payload.
func (r *Registry) Decode(name string, payload map[string]any) (domain.Action, error) {
	r.mu.RLock()
	kind, ok := r.kinds[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAction, name)
	}

	target := reflect.New(kind)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           target.Interface(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder for %s: %w", name, err)
	}
	if err := decoder.Decode(payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", name, err)
	}

	return target.Elem().Interface(), nil
}

// NameOf returns the name the action's kind was registered under.
func (r *Registry) NameOf(action domain.Action) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[domain.KindOf(action)]
	return name, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
