package stream

// CompareFunc orders two values: negative when a precedes b, zero when they
// rank equally, positive when b precedes a.
type CompareFunc[T any] func(a, b T) int

// Merge lazily interleaves two streams that are each ordered by cmp into a
// single stream ordered the same way. Ties take from a first, so Merge is
// stable with respect to argument order. Only the two current heads are
// compared per cell; both inputs may be infinite.
func Merge[T any](cmp CompareFunc[T], a, b Stream[T]) Stream[T] {
	ca, ok := a.(*consCell[T])
	if !ok {
		return b
	}
	cb, ok := b.(*consCell[T])
	if !ok {
		return a
	}
	if cmp(ca.value, cb.value) <= 0 {
		return New(ca.value, func() Stream[T] {
			return Merge(cmp, ca.rest.Force(), b)
		})
	}
	return New(cb.value, func() Stream[T] {
		return Merge(cmp, a, cb.rest.Force())
	})
}
