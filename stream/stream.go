package stream

import (
	"fmt"

	"github.com/iagoleal/lazy-streams/pure"
)

// Empty returns the empty stream of T.
func Empty[T any]() Stream[T] { return emptyStream[T]{} }

// IsEmpty reports whether s is the empty marker.
func IsEmpty[T any](s Stream[T]) bool {
	_, ok := s.(emptyStream[T])
	return ok
}

// IsStream reports whether x is a stream of any element type.
func IsStream(x any) bool {
	_, ok := x.(interface{ streamMarker() })
	return ok
}

// New builds a cell with the given head and a tail computed lazily by
// producer. The producer runs at most once, the first time the tail is
// forced. A nil producer stands for "no more elements": the tail resolves to
// the empty stream without invoking anything.
func New[T any](value T, producer func() Stream[T]) Stream[T] {
	if producer == nil {
		return &consCell[T]{value: value, rest: pure.Resolved(Empty[T]())}
	}
	return &consCell[T]{value: value, rest: pure.Delay(producer)}
}

// Cons prepends value to an already known stream.
func Cons[T any](value T, rest Stream[T]) Stream[T] {
	return &consCell[T]{value: value, rest: pure.Resolved(rest)}
}

// Head returns the value stored in the first cell of s.
// Panics with ErrEmptyStream when s is empty; check IsEmpty first.
func Head[T any](s Stream[T]) T {
	cell, ok := s.(*consCell[T])
	if !ok {
		panic(fmt.Errorf("%w: Head", ErrEmptyStream))
	}
	return cell.value
}

// Tail forces and returns the rest of s.
// Panics with ErrEmptyStream when s is empty.
func Tail[T any](s Stream[T]) Stream[T] {
	cell, ok := s.(*consCell[T])
	if !ok {
		panic(fmt.Errorf("%w: Tail", ErrEmptyStream))
	}
	return cell.rest.Force()
}

// Uncons splits s into its head and its forced tail.
// Panics with ErrEmptyStream when s is empty.
func Uncons[T any](s Stream[T]) (T, Stream[T]) {
	return Head(s), Tail(s)
}

// Access returns the idx-th element of s, 1-based. It forces idx-1 tails.
// Returns ErrInvalidIndex for idx < 1 and ErrIndexOutOfRange when s ends
// before the requested position.
func Access[T any](s Stream[T], idx int) (T, error) {
	var zero T
	if idx < 1 {
		return zero, fmt.Errorf("%w: got %d", ErrInvalidIndex, idx)
	}
	for remaining := idx; ; remaining-- {
		if IsEmpty(s) {
			return zero, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, idx)
		}
		if remaining == 1 {
			return Head(s), nil
		}
		s = Tail(s)
	}
}

// Len counts the cells of s by folding over it.
// Only defined for finite streams: on an infinite stream Len never returns.
func Len[T any](s Stream[T]) int {
	return Fold(func(_ T, acc int) int { return acc + 1 }, 0, s)
}
