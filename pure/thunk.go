package pure

import (
	"sync"
)

// Thunk is a deferred computation memoized after its first evaluation.
//
// The producer runs at most once for the lifetime of the thunk; the result is
// cached on the first Force and every later Force returns the cache without
// touching the producer again. A nil producer is a valid thunk: forcing it
// yields the zero value of O and never invokes anything.
//
// Failure caching: if the producer panics on the first Force, the panic value
// is cached and re-raised on every later Force. The producer is never retried.
//
// The unresolved-to-resolved transition is guarded by a mutex, so the
// at-most-once guarantee holds under concurrent readers. A producer that
// forces its own thunk deadlocks; that is the usual divergence of a
// self-dependent computation, not a recoverable condition.
type Thunk[O any] struct {
	mu       sync.Mutex
	producer func() O
	result   O
	panicked any
	done     bool
}

// Delay wraps a zero-argument producer into an unresolved thunk.
// The producer may be nil, in which case Force yields the zero value of O.
func Delay[O any](producer func() O) *Thunk[O] {
	return &Thunk[O]{producer: producer}
}

// Resolved builds a thunk that is already in the resolved state.
// Forcing it returns value immediately; no producer is ever involved.
func Resolved[O any](value O) *Thunk[O] {
	return &Thunk[O]{result: value, done: true}
}

// Force evaluates the thunk.
//
//   - unresolved: run the producer exactly once, cache its result, return it.
//   - resolved: return the cached result; the producer is not invoked again,
//     whatever side effects it may have.
//   - resolved by panic: re-raise the cached panic value.
func (t *Thunk[O]) Force() O {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		if t.panicked != nil {
			panic(t.panicked)
		}
		return t.result
	}
	t.done = true

	if t.producer == nil {
		return t.result
	}
	producer := t.producer
	// Drop the producer so captured references become collectable once the
	// result exists.
	t.producer = nil

	defer func() {
		if r := recover(); r != nil {
			t.panicked = r
			panic(r)
		}
	}()
	t.result = producer()
	return t.result
}

// Forced reports whether the thunk has already transitioned to resolved.
// It never triggers evaluation.
func (t *Thunk[O]) Forced() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}
