package stream

// Map applies f positionally over s. Each output cell forces exactly the
// head of the current position; the input tail is forced only when the
// output tail is, so laziness is preserved transitively.
func Map[T, R any](f func(T) R, s Stream[T]) Stream[R] {
	cell, ok := s.(*consCell[T])
	if !ok {
		return Empty[R]()
	}
	return New(f(cell.value), func() Stream[R] {
		return Map(f, cell.rest.Force())
	})
}

// ZipWith applies f positionally over two streams of possibly different
// element types. The result ends where the shorter input ends.
func ZipWith[A, B, R any](f func(A, B) R, a Stream[A], b Stream[B]) Stream[R] {
	ca, ok := a.(*consCell[A])
	if !ok {
		return Empty[R]()
	}
	cb, ok := b.(*consCell[B])
	if !ok {
		return Empty[R]()
	}
	return New(f(ca.value, cb.value), func() Stream[R] {
		return ZipWith(f, ca.rest.Force(), cb.rest.Force())
	})
}

// MapN zips any number of same-typed streams, handing f the heads of the
// current position as a slice in argument order. No streams yields the empty
// stream; otherwise the result stops at the shortest input. The heads slice
// is freshly allocated per position, so f may retain it.
func MapN[T, R any](f func([]T) R, streams ...Stream[T]) Stream[R] {
	if len(streams) == 0 {
		return Empty[R]()
	}
	heads := make([]T, len(streams))
	for i, s := range streams {
		cell, ok := s.(*consCell[T])
		if !ok {
			return Empty[R]()
		}
		heads[i] = cell.value
	}
	return New(f(heads), func() Stream[R] {
		tails := make([]Stream[T], len(streams))
		for i, s := range streams {
			tails[i] = Tail(s)
		}
		return MapN(f, tails...)
	})
}

// Filter keeps the elements of s satisfying p. Matching elements are emitted
// lazily; non-matching elements are skipped eagerly, one forced tail per
// skip, until the next match or the end of s.
//
// Consequence: filtering an infinite stream with a predicate that matches
// only finitely many elements never returns. That is the contract, not a
// bug: the sieve-of-Eratosthenes idiom depends on it.
func Filter[T any](p func(T) bool, s Stream[T]) Stream[T] {
	for {
		cell, ok := s.(*consCell[T])
		if !ok {
			return s
		}
		if p(cell.value) {
			return New(cell.value, func() Stream[T] {
				return Filter(p, cell.rest.Force())
			})
		}
		s = cell.rest.Force()
	}
}

// Fold computes the right fold of s: base when s is empty, otherwise
// op(head, Fold(op, base, tail)). Not tail-recursive, so it consumes stack
// proportional to the length of s and never returns on an infinite stream.
// For long finite streams prefer FoldLeft.
func Fold[T, R any](op func(T, R) R, base R, s Stream[T]) R {
	cell, ok := s.(*consCell[T])
	if !ok {
		return base
	}
	return op(cell.value, Fold(op, base, cell.rest.Force()))
}

// FoldLeft computes the left fold of s iteratively: constant stack, one
// forced tail per element, left-associative grouping. Still diverges on
// infinite streams, but never overflows on finite ones.
func FoldLeft[T, R any](op func(R, T) R, base R, s Stream[T]) R {
	acc := base
	for !IsEmpty(s) {
		acc = op(acc, Head(s))
		s = Tail(s)
	}
	return acc
}
