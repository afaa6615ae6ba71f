package render

import "github.com/delaneyj/fetchparty/loadable"

// Branches are the per-call renderers for each lifecycle phase. Any member
// may be nil; Resolve then falls back to the registry (unless disabled by
// option) and finally to a built-in plain-text default.
type Branches[T any] struct {
	Success func(v T) Renderable
	Loading func() Renderable
	Error   func(message string) Renderable
	Empty   func(message string) Renderable
}

type config struct {
	disabled   bool
	noFallback bool
	registry   *Registry
}

// Option tweaks a single Resolve call.
type Option func(*config)

// WithDisabled bypasses the lifecycle entirely: when a payload is present the
// success branch renders no matter the current phase.
func WithDisabled() Option {
	return func(c *config) {
		c.disabled = true
	}
}

// WithoutFallback skips the registry defaults; missing branches go straight
// to the built-in renderers.
func WithoutFallback() Option {
	return func(c *config) {
		c.noFallback = true
	}
}

// WithRegistry consults reg instead of the process-wide Default registry.
func WithRegistry(reg *Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) fallback() *Registry {
	if c.noFallback {
		return nil
	}
	if c.registry != nil {
		return c.registry
	}
	return Default()
}

// Resolve picks the render branch for the container's current phase using the
// priority order per-call branch, registry default, built-in default.
func Resolve[T any](state *loadable.Loadable[T], b Branches[T], opts ...Option) Renderable {
	cfg := newConfig(opts)
	if cfg.disabled {
		if v, ok := state.Value(); ok {
			return renderSuccess(b.Success, v)
		}
	}

	switch state.Status() {
	case loadable.StatusLoading:
		return renderLoading(b.Loading, cfg)
	case loadable.StatusSuccess:
		v, ok := state.Value()
		if !ok {
			// success without a payload renders nothing rather than
			// handing the branch a placeholder value
			return Nothing
		}
		return renderSuccess(b.Success, v)
	case loadable.StatusError:
		return renderError(b.Error, state.Message(), cfg)
	default:
		return renderEmpty(b.Empty, state.Message(), cfg)
	}
}

func renderSuccess[T any](branch func(T) Renderable, v T) Renderable {
	if branch == nil {
		return Nothing
	}
	return branch(v)
}

func renderLoading(branch func() Renderable, cfg *config) Renderable {
	if branch != nil {
		return branch()
	}
	if reg := cfg.fallback(); reg != nil {
		if fn := reg.loadingRenderer(); fn != nil {
			return fn()
		}
	}
	return Text("Loading...")
}

func renderError(branch func(string) Renderable, message string, cfg *config) Renderable {
	if branch != nil {
		return branch(message)
	}
	if reg := cfg.fallback(); reg != nil {
		if fn := reg.errorRenderer(); fn != nil {
			return fn(message)
		}
	}
	return Text(message)
}

func renderEmpty(branch func(string) Renderable, message string, cfg *config) Renderable {
	if branch != nil {
		return branch(message)
	}
	if reg := cfg.fallback(); reg != nil {
		if fn := reg.emptyRenderer(); fn != nil {
			return fn(message)
		}
	}
	if message == "" {
		message = loadable.DefaultEmptyMessage
	}
	return Text(message)
}
