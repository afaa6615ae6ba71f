package loadable

import (
	"reflect"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultEmptyMessage is used by SetEmpty when no message is given.
const DefaultEmptyMessage = "No data available"

// Loadable tracks the lifecycle of an asynchronous fetch for a value of type T
// and notifies subscribers when the phase or payload actually changes.
// Setters that would leave the container in an identical state are suppressed,
// so subscribers only wake up on real transitions.
type Loadable[T any] struct {
	mu       sync.Mutex
	status   Status
	value    T
	hasValue bool
	message  string
	equal    func(a, b T) bool

	// It's a set because a stopped subscription must be removable without
	// knowing its position, and double-adds must collapse to one entry
	subs mapset.Set[*subscription]
}

type subscription struct {
	fn func()
}

// Option configures a Loadable at construction time.
type Option[T any] func(*Loadable[T])

// WithEqual replaces the payload equality used for change suppression.
// The default is reflect.DeepEqual, which handles value-like payloads and
// slices; composite payloads with a cheaper notion of identity should supply
// their own.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(l *Loadable[T]) {
		l.equal = eq
	}
}

// ComparableEqual is a WithEqual argument for payloads that support ==.
func ComparableEqual[T comparable](a, b T) bool {
	return a == b
}

// New returns a Loadable in the empty phase with no payload.
func New[T any](opts ...Option[T]) *Loadable[T] {
	l := &Loadable[T]{
		status: StatusEmpty,
		equal: func(a, b T) bool {
			return reflect.DeepEqual(a, b)
		},
		subs: mapset.NewSet[*subscription](),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Of returns a Loadable already holding a successfully fetched value.
func Of[T any](initial T, opts ...Option[T]) *Loadable[T] {
	l := New(opts...)
	l.status = StatusSuccess
	l.value = initial
	l.hasValue = true
	return l
}

// Subscribe registers fn to run after every accepted mutation. The returned
// stop function removes the subscription; callers that outlive the owning
// scope must call it or the callback leaks.
func (l *Loadable[T]) Subscribe(fn func()) (stop func()) {
	s := &subscription{fn: fn}
	l.mu.Lock()
	l.subs.Add(s)
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		l.subs.Remove(s)
		l.mu.Unlock()
	}
}

// StartLoading moves to the loading phase, clearing payload and message.
// No-op when already loading.
func (l *Loadable[T]) StartLoading() {
	l.mu.Lock()
	if l.status == StatusLoading {
		l.mu.Unlock()
		return
	}
	l.status = StatusLoading
	l.clearValueLocked()
	l.message = ""
	subs := l.subs.ToSlice()
	l.mu.Unlock()
	notify(subs)
}

// Succeed stores v as the fetched payload. Suppressed when already in the
// success phase with an equal payload.
func (l *Loadable[T]) Succeed(v T) {
	l.mu.Lock()
	if l.status == StatusSuccess && l.hasValue && l.equal(l.value, v) {
		l.mu.Unlock()
		return
	}
	l.status = StatusSuccess
	l.value = v
	l.hasValue = true
	l.message = ""
	subs := l.subs.ToSlice()
	l.mu.Unlock()
	notify(subs)
}

// SetValue stores v and forces the success phase, no matter which phase the
// container is in. Suppressed only when the current payload is equal to v.
func (l *Loadable[T]) SetValue(v T) {
	l.mu.Lock()
	if l.hasValue && l.equal(l.value, v) {
		l.mu.Unlock()
		return
	}
	l.status = StatusSuccess
	l.value = v
	l.hasValue = true
	l.message = ""
	subs := l.subs.ToSlice()
	l.mu.Unlock()
	notify(subs)
}

// Fail moves to the error phase carrying message. Suppressed when already
// failed with the same message.
func (l *Loadable[T]) Fail(message string) {
	l.mu.Lock()
	if l.status == StatusError && l.message == message {
		l.mu.Unlock()
		return
	}
	l.status = StatusError
	l.clearValueLocked()
	l.message = message
	subs := l.subs.ToSlice()
	l.mu.Unlock()
	notify(subs)
}

// SetEmpty moves to the empty phase. With no argument the message defaults to
// DefaultEmptyMessage. Suppressed when already empty with the same message.
func (l *Loadable[T]) SetEmpty(message ...string) {
	msg := DefaultEmptyMessage
	if len(message) > 0 {
		msg = message[0]
	}
	l.mu.Lock()
	if l.status == StatusEmpty && l.message == msg {
		l.mu.Unlock()
		return
	}
	l.status = StatusEmpty
	l.clearValueLocked()
	l.message = msg
	subs := l.subs.ToSlice()
	l.mu.Unlock()
	notify(subs)
}

// Reset returns the container to a pristine empty phase and always notifies,
// even when nothing changed.
func (l *Loadable[T]) Reset() {
	l.mu.Lock()
	l.status = StatusEmpty
	l.clearValueLocked()
	l.message = ""
	subs := l.subs.ToSlice()
	l.mu.Unlock()
	notify(subs)
}

// Status reports the current lifecycle phase.
func (l *Loadable[T]) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Value returns the payload and whether one is present. A payload is only
// present in the success phase.
func (l *Loadable[T]) Value() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.hasValue
}

// Message returns the error or empty-phase text, whichever phase set it.
func (l *Loadable[T]) Message() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.message
}

func (l *Loadable[T]) IsLoading() bool {
	return l.Status() == StatusLoading
}

func (l *Loadable[T]) HasError() bool {
	return l.Status() == StatusError
}

// HasValue reports a success phase with a payload actually present.
func (l *Loadable[T]) HasValue() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status == StatusSuccess && l.hasValue
}

func (l *Loadable[T]) IsEmpty() bool {
	return l.Status() == StatusEmpty
}

func (l *Loadable[T]) clearValueLocked() {
	var zero T
	l.value = zero
	l.hasValue = false
}

// The slice is a snapshot taken under the lock; callbacks run outside it so a
// subscriber may mutate the same Loadable or stop itself without deadlocking.
func notify(subs []*subscription) {
	for _, s := range subs {
		s.fn()
	}
}
