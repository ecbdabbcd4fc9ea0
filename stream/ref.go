package stream

import "errors"

// ErrUnboundRef reports a Ref dereferenced before Bind.
var ErrUnboundRef = errors.New("stream ref not bound yet")

// ErrReboundRef reports a second Bind on the same Ref.
var ErrReboundRef = errors.New("stream ref already bound")

// Ref is a write-once handle for building self-referential streams in two
// phases: allocate the handle, then Bind it to a stream whose tail producer
// captures the handle. The producer dereferences the handle only when the
// tail is actually forced, by which time Bind has completed.
//
//	fib := stream.NewRef[int]()
//	fib.Bind(stream.Cons(0, stream.New(1, func() stream.Stream[int] {
//		return stream.ZipWith(add, fib.Stream(), stream.Tail(fib.Stream()))
//	})))
//
// Plain Go closure capture of a later-assigned variable works just as well;
// Ref exists for call sites where no assignable variable is in scope and to
// make the binding single-assignment by construction.
type Ref[T any] struct {
	cell  Stream[T]
	bound bool
}

// NewRef allocates an unbound handle.
func NewRef[T any]() *Ref[T] { return &Ref[T]{} }

// Bind resolves the handle to s, exactly once, and returns s for chaining.
// Panics with ErrReboundRef on a second call.
func (r *Ref[T]) Bind(s Stream[T]) Stream[T] {
	if r.bound {
		panic(ErrReboundRef)
	}
	r.bound = true
	r.cell = s
	return s
}

// Stream dereferences the handle.
// Panics with ErrUnboundRef when called before Bind; a tail producer that
// trips this forced its cell before construction finished.
func (r *Ref[T]) Stream() Stream[T] {
	if !r.bound {
		panic(ErrUnboundRef)
	}
	return r.cell
}
