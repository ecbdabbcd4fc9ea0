package stream

// Number constrains the element types the range generators count over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// RangeFrom yields the infinite stream i, i+1, i+2, ...
func RangeFrom[N Number](i N) Stream[N] {
	return RangeFromBy(i, 1)
}

// RangeFromBy yields the infinite stream i, i+step, i+2*step, ...
func RangeFromBy[N Number](i, step N) Stream[N] {
	return New(i, func() Stream[N] {
		return RangeFromBy(i+step, step)
	})
}

// Range yields i, i+1, ..., stopping once the current value exceeds j.
// Empty when i > j.
func Range[N Number](i, j N) Stream[N] {
	return RangeBy(i, j, 1)
}

// RangeBy yields i, i+step, i+2*step, ..., stopping once the current value
// exceeds j. The bound is checked against the current value once per cell,
// so a step that jumps past j terminates at the next cell, not mid-step.
func RangeBy[N Number](i, j, step N) Stream[N] {
	if i > j {
		return Empty[N]()
	}
	return New(i, func() Stream[N] {
		return RangeBy(i+step, j, step)
	})
}

// Replicate yields the infinite stream x, x, x, ... The one x given at the
// call site is shared by every cell; nothing is reconstructed per position.
func Replicate[T any](x T) Stream[T] {
	return New(x, func() Stream[T] {
		return Replicate(x)
	})
}

// Iterate yields x, f(x), f(f(x)), ..., with one application of f per
// forced tail.
func Iterate[T any](f func(T) T, x T) Stream[T] {
	return New(x, func() Stream[T] {
		return Iterate(f, f(x))
	})
}

// Unfoldr is the general anamorphism underlying the generators above. Each
// step applies f to the seed: ok == false ends the stream, otherwise the
// value is emitted and the next seed drives the (lazily computed) rest.
func Unfoldr[S, T any](f func(S) (value T, next S, ok bool), seed S) Stream[T] {
	value, next, ok := f(seed)
	if !ok {
		return Empty[T]()
	}
	return New(value, func() Stream[T] {
		return Unfoldr(f, next)
	})
}
