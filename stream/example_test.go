package stream_test

import (
	"fmt"

	"github.com/iagoleal/lazy-streams/stream"
)

func ExampleCollectN() {
	naturals := stream.RangeFrom(1)
	fmt.Println(stream.CollectN(naturals, 5))
	// Output: [1 2 3 4 5]
}

func ExampleFilter() {
	even := func(n int) bool { return n%2 == 0 }
	evens := stream.Filter(even, stream.RangeFrom(1))
	fmt.Println(stream.CollectN(evens, 3))
	// Output: [2 4 6]
}

func ExampleUnfoldr() {
	countdown := stream.Unfoldr(func(n int) (string, int, bool) {
		if n == 0 {
			return "", 0, false
		}
		return fmt.Sprintf("t-%d", n), n - 1, true
	}, 3)
	fmt.Println(stream.Collect(countdown))
	// Output: [t-3 t-2 t-1]
}

func ExampleNewRef() {
	add := func(a, b int) int { return a + b }

	fib := stream.NewRef[int]()
	fib.Bind(stream.Cons(0, stream.New(1, func() stream.Stream[int] {
		return stream.ZipWith(add, fib.Stream(), stream.Tail(fib.Stream()))
	})))

	fmt.Println(stream.CollectN(fib.Stream(), 8))
	// Output: [0 1 1 2 3 5 8 13]
}
