package shading

import (
	"sort"
	"sync"
)

// Runtime tells whether a shading model can be evaluated by the active pipeline.
type Runtime interface {
	Supports(model string) bool
}

// Registry is the set of shading models the runtime knows about.
type Registry struct {
	mu     sync.RWMutex
	models map[string]struct{}
}

func NewRegistry(models ...string) *Registry {
	r := &Registry{models: make(map[string]struct{}, len(models))}
	for _, m := range models {
		r.models[m] = struct{}{}
	}
	return r
}

func (r *Registry) Supports(model string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.models[model]
	return ok
}

func (r *Registry) Register(model string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[model] = struct{}{}
}

func (r *Registry) Unregister(model string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.models, model)
}

func (r *Registry) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]string, 0, len(r.models))
	for m := range r.models {
		list = append(list, m)
	}
	sort.Strings(list)
	return list
}
