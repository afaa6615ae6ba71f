package render

import "github.com/delaneyj/fetchparty/loadable"

// ListBranches extends Branches for slice payloads with a dedicated
// empty-list renderer. A success phase holding a zero-length slice renders as
// empty without the container ever leaving the success phase.
type ListBranches[T any] struct {
	Branches[[]T]

	// EmptyList wins over the generic Empty branch when both are set.
	EmptyList        func(message string) Renderable
	EmptyListMessage string
}

// ResolveList is Resolve for slice payloads, treating an empty slice like the
// empty phase for rendering purposes only.
func ResolveList[T any](state *loadable.Loadable[[]T], b ListBranches[T], opts ...Option) Renderable {
	cfg := newConfig(opts)
	if cfg.disabled {
		if v, ok := state.Value(); ok {
			return renderSuccess(b.Success, v)
		}
	}

	if state.HasValue() {
		if v, _ := state.Value(); len(v) == 0 {
			msg := b.EmptyListMessage
			if msg == "" {
				msg = state.Message()
			}
			if b.EmptyList != nil {
				return b.EmptyList(msg)
			}
			return renderEmpty(b.Empty, msg, cfg)
		}
	}

	return Resolve(state, b.Branches, opts...)
}
