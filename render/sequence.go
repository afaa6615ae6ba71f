package render

import "github.com/delaneyj/fetchparty/loadable"

// Sequence is a finite, position-indexed run of renderables. Items are built
// lazily on access, so a virtualized surface only pays for the rows it shows.
type Sequence interface {
	Len() int
	At(i int) Renderable
}

// ItemFunc renders one element of a slice payload at its position.
type ItemFunc[T any] func(i int, v T) Renderable

// ResolveSeq dispatches like Resolve but, in the success phase, yields one
// renderable per payload element instead of a single renderable. The payload
// is not copied: the sequence reads it live from the container on every
// access. Any other phase yields a single-element sequence holding the
// Resolve result.
func ResolveSeq[T any](state *loadable.Loadable[[]T], b Branches[[]T], item ItemFunc[T], opts ...Option) Sequence {
	if state.HasValue() {
		return &liveSeq[T]{src: state, item: item}
	}
	return singleSeq{r: Resolve(state, b, opts...)}
}

type liveSeq[T any] struct {
	src  *loadable.Loadable[[]T]
	item ItemFunc[T]
}

func (s *liveSeq[T]) Len() int {
	v, _ := s.src.Value()
	return len(v)
}

func (s *liveSeq[T]) At(i int) Renderable {
	v, _ := s.src.Value()
	return s.item(i, v[i])
}

type singleSeq struct {
	r Renderable
}

func (s singleSeq) Len() int {
	return 1
}

func (s singleSeq) At(i int) Renderable {
	return s.r
}
