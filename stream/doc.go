// Package stream provides lazy, memoized, immutable sequences for Go.
//
// A Stream is either the empty marker or a cell pairing an eagerly stored
// head with a thunk for the rest. Forcing a tail is the only place
// computation happens; it happens at most once per cell, and the result is
// cached, so a stream may be consumed repeatedly and shared freely.
//
// # Laziness
//
// Combinators never walk the structure they are given. Each call builds at
// most one new cell whose tail producer re-invokes the combinator, so even
// infinite streams (RangeFrom, Replicate, Iterate) cost one cell per
// element actually consumed:
//
//	evens := stream.Filter(func(n int) bool { return n%2 == 0 }, stream.RangeFrom(1))
//	stream.CollectN(evens, 3) // [2 4 6]
//
// # Divergence
//
// Operations that must consume their whole input (Collect, Fold, Len,
// Fingerprint) never return when that input is infinite. The same holds for
// Filter when the predicate stops matching. This is the contract of a lazy
// sequence library, not a fault: bound infinite streams with Take before
// materializing them. No operation guards against it, because guarding would
// change what the combinator means.
//
// # Self-reference
//
// A tail producer may capture a binding that is assigned only after the cell
// is constructed; by the time the producer runs, the binding is resolved.
// Use an ordinary closed-over variable, or the write-once Ref handle:
//
//	fib := stream.NewRef[int]()
//	fib.Bind(stream.Cons(0, stream.New(1, func() stream.Stream[int] {
//		return stream.ZipWith(add, fib.Stream(), stream.Tail(fib.Stream()))
//	})))
//
// # Errors
//
// Head, Tail and Uncons on the empty stream are precondition violations and
// panic with ErrEmptyStream. Access reports bad indexes as ordinary errors
// (ErrInvalidIndex, ErrIndexOutOfRange). Nothing else in the package fails.
package stream
