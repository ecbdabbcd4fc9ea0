package stream

import (
	"errors"
	"fmt"

	"github.com/iagoleal/lazy-streams/pure"
)

// ErrEmptyStream reports a precondition violation: Head, Tail or Uncons was
// called on the empty stream. Callers are expected to check IsEmpty first.
var ErrEmptyStream = errors.New("empty stream")

// ErrInvalidIndex reports an Access index below 1.
var ErrInvalidIndex = errors.New("stream index must be positive")

// ErrIndexOutOfRange reports an Access walk that exhausted a finite stream
// before reaching the requested index.
var ErrIndexOutOfRange = errors.New("stream index out of range")

// Stream is a lazy, immutable, singly-linked sequence of T: either the empty
// marker or a cell holding an eagerly stored head and a memoized thunk for
// the rest. Streams may be infinite; nothing beyond the current head is
// computed until a tail is forced, and every tail is forced at most once.
//
// Stream is a sealed interface: the only implementations are the two
// variants defined in this package. The element type appears in the sealed
// method's signature so that T is inferable from a Stream[T] argument alone.
type Stream[T any] interface {
	fmt.Stringer
	sealedStream(T)
	streamMarker()
}

type emptyStream[T any] struct{}

func (emptyStream[T]) sealedStream(T) {}

func (emptyStream[T]) streamMarker() {}

func (emptyStream[T]) String() string { return "Stream()" }

type consCell[T any] struct {
	value T
	rest  *pure.Thunk[Stream[T]]
}

func (*consCell[T]) sealedStream(T) {}

func (*consCell[T]) streamMarker() {}

// String renders the head only. Printing never forces the tail; an already
// resolved tail shows as "...", an unresolved one as "?".
func (c *consCell[T]) String() string {
	if c.rest.Forced() {
		return fmt.Sprintf("Stream(%v, ...)", c.value)
	}
	return fmt.Sprintf("Stream(%v, ?)", c.value)
}
