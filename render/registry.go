package render

import "sync"

// Registry holds app-wide default renderers for the loading, error and empty
// phases. Resolve consults it when no per-call branch is supplied. Written
// rarely (bootstrap), read on every dispatch.
type Registry struct {
	mu      sync.RWMutex
	loading func() Renderable
	err     func(message string) Renderable
	empty   func(message string) Renderable
}

// Defaults carries a partial set of default renderers for SetDefaults.
type Defaults struct {
	Loading func() Renderable
	Error   func(message string) Renderable
	Empty   func(message string) Renderable
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) SetLoading(fn func() Renderable) {
	r.mu.Lock()
	r.loading = fn
	r.mu.Unlock()
}

func (r *Registry) SetError(fn func(message string) Renderable) {
	r.mu.Lock()
	r.err = fn
	r.mu.Unlock()
}

func (r *Registry) SetEmpty(fn func(message string) Renderable) {
	r.mu.Lock()
	r.empty = fn
	r.mu.Unlock()
}

// SetDefaults applies only the non-nil members of d, leaving the rest as they
// were.
func (r *Registry) SetDefaults(d Defaults) {
	r.mu.Lock()
	if d.Loading != nil {
		r.loading = d.Loading
	}
	if d.Error != nil {
		r.err = d.Error
	}
	if d.Empty != nil {
		r.empty = d.Empty
	}
	r.mu.Unlock()
}

// Reset clears all three defaults. Tests sharing the process-wide registry
// should call this between cases.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.loading = nil
	r.err = nil
	r.empty = nil
	r.mu.Unlock()
}

func (r *Registry) loadingRenderer() func() Renderable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

func (r *Registry) errorRenderer() func(string) Renderable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

func (r *Registry) emptyRenderer() func(string) Renderable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.empty
}

var defaultRegistry = NewRegistry()

// Default is the process-wide registry used when no WithRegistry option is
// given. Prefer an injected Registry where testability matters.
func Default() *Registry {
	return defaultRegistry
}
