package extract

import (
	"fmt"
	"sort"

	"github.com/catalogkit/extractor/constants"
	"github.com/catalogkit/extractor/internal/common"
)

// Registry maps method names to adapter implementations. It is populated
// once at process start; lookups after that are read-only, so no locking.
type Registry struct {
	extractors map[constants.Method]Extractor
}

func NewRegistry() *Registry {
	return &Registry{extractors: make(map[constants.Method]Extractor)}
}

// Register binds an adapter to a method name. Unknown method names and
// duplicate registrations are programming errors.
func (r *Registry) Register(name string, e Extractor) error {
	method, ok := constants.ParseMethod(name)
	if !ok {
		return fmt.Errorf("register %q: %w", name, common.ErrInvalidConfiguration)
	}
	if _, exists := r.extractors[method]; exists {
		return fmt.Errorf("register %q: already registered", name)
	}
	r.extractors[method] = e
	return nil
}

// Lookup resolves a method name to its adapter. A known method without a
// registered adapter is reported the same as an unknown method: the caller
// cannot run a pass with it.
func (r *Registry) Lookup(name string) (Extractor, error) {
	method, ok := constants.ParseMethod(name)
	if !ok {
		return nil, fmt.Errorf("unknown method %q: %w", name, common.ErrInvalidConfiguration)
	}
	e, ok := r.extractors[method]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for method %q: %w", name, common.ErrInvalidConfiguration)
	}
	return e, nil
}

// Methods returns the registered method names, sorted.
func (r *Registry) Methods() []string {
	out := make([]string, 0, len(r.extractors))
	for m := range r.extractors {
		out = append(out, string(m))
	}
	sort.Strings(out)
	return out
}
