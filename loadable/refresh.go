package loadable

import "context"

// FetchFunc produces the next payload, typically from a network or storage
// call.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Refresh runs fetch through the full lifecycle: the container enters the
// loading phase, then either success with the fetched value or error with the
// stringified failure. The error is fully absorbed here; it is only
// observable through HasError and Message afterward.
//
// Overlapping Refresh calls have no winner policy: whichever completion lands
// last decides the final phase.
func (l *Loadable[T]) Refresh(ctx context.Context, fetch FetchFunc[T]) {
	l.StartLoading()
	v, err := fetch(ctx)
	if err != nil {
		l.Fail(err.Error())
		return
	}
	l.Succeed(v)
}
