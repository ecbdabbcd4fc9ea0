package stream_test

import (
	"testing"

	"github.com/iagoleal/lazy-streams/stream"
	"github.com/stretchr/testify/assert"
)

func TestRangeFrom_InfiniteButCheapToBuild(t *testing.T) {
	// Constructing an infinite stream returns immediately; only consumption
	// walks the producer chain.
	naturals := stream.RangeFrom(1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, stream.CollectN(naturals, 5))
}

func TestRangeFromBy_Steps(t *testing.T) {
	assert.Equal(t, []int{0, 10, 20}, stream.CollectN(stream.RangeFromBy(0, 10), 3))
	assert.Equal(t, []int{5, 3, 1, -1}, stream.CollectN(stream.RangeFromBy(5, -2), 4))
	assert.Equal(t, []float64{0, 0.5, 1}, stream.CollectN(stream.RangeFromBy(0.0, 0.5), 3))
}

func TestRange_Bounds(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, stream.Collect(stream.Range(1, 3)))
	assert.Equal(t, []int{2}, stream.Collect(stream.Range(2, 2)))
	assert.True(t, stream.IsEmpty(stream.Range(4, 3)))
}

func TestRangeBy_StepPastBoundStopsAtNextCell(t *testing.T) {
	// The bound check uses the current value only: 3 <= 4 emits, 5 > 4 ends.
	assert.Equal(t, []int{1, 3}, stream.Collect(stream.RangeBy(1, 4, 2)))
	assert.Equal(t, []int{1, 3, 5}, stream.Collect(stream.RangeBy(1, 5, 2)))
}

func TestReplicate_SharesTheOneValue(t *testing.T) {
	xs := stream.Replicate("ha")
	assert.Equal(t, []string{"ha", "ha", "ha"}, stream.CollectN(xs, 3))
}

func TestIterate_AppliesOncePerCell(t *testing.T) {
	applications := 0
	double := func(n int) int {
		applications++
		return n * 2
	}

	powers := stream.Iterate(double, 1)
	assert.Equal(t, 0, applications)

	assert.Equal(t, []int{1, 2, 4, 8, 16}, stream.CollectN(powers, 5))
	assert.Equal(t, 4, applications)
}

func TestUnfoldr_TerminatesOnNotOk(t *testing.T) {
	got := stream.Unfoldr(func(seed int) (int, int, bool) {
		if seed > 3 {
			return 0, 0, false
		}
		return seed, seed + 1, true
	}, 1)
	assert.Equal(t, []int{1, 2, 3}, stream.Collect(got))
}

func TestUnfoldr_ImmediatelyDone(t *testing.T) {
	got := stream.Unfoldr(func(seed int) (string, int, bool) {
		return "", 0, false
	}, 99)
	assert.True(t, stream.IsEmpty(got))
}

func TestUnfoldr_SeedCarriesState(t *testing.T) {
	type pair struct{ a, b int }
	fibs := stream.Unfoldr(func(s pair) (int, pair, bool) {
		return s.a, pair{s.b, s.a + s.b}, true
	}, pair{0, 1})
	assert.Equal(t, []int{0, 1, 1, 2, 3, 5, 8, 13}, stream.CollectN(fibs, 8))
}
