package stream

// Unbounded makes Take return its input unchanged, for call sites that
// decide at run time whether to bound a stream.
const Unbounded = -1

// Take returns a stream of at most the first n elements of s. The empty
// stream is returned unchanged whatever n is; n == Unbounded returns s
// itself; any other n <= 0 yields the empty stream.
func Take[T any](n int, s Stream[T]) Stream[T] {
	cell, ok := s.(*consCell[T])
	if !ok {
		return s
	}
	if n == Unbounded {
		return s
	}
	if n <= 0 {
		return Empty[T]()
	}
	return New(cell.value, func() Stream[T] {
		// Stop before forcing the n+1-th cell; taking n elements touches
		// exactly n cells of the source.
		if n == 1 {
			return Empty[T]()
		}
		return Take(n-1, cell.rest.Force())
	})
}

// Drop discards the first n elements of s, forcing one tail per dropped
// element. n <= 0 returns s unchanged; a stream shorter than n drains to
// the empty stream.
func Drop[T any](n int, s Stream[T]) Stream[T] {
	for n > 0 && !IsEmpty(s) {
		s = Tail(s)
		n--
	}
	return s
}

// Collect materializes the whole of s into a slice, in order.
// On an infinite stream Collect never returns; bound it with Take or use
// CollectN.
func Collect[T any](s Stream[T]) []T {
	var out []T
	for !IsEmpty(s) {
		out = append(out, Head(s))
		s = Tail(s)
	}
	return out
}

// CollectN materializes at most the first n elements of s.
// Equivalent to Collect(Take(n, s)).
func CollectN[T any](s Stream[T], n int) []T {
	return Collect(Take(n, s))
}
