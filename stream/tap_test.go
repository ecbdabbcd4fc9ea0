package stream_test

import (
	"testing"

	"github.com/iagoleal/lazy-streams/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestTap_PassesElementsThroughUnchanged(t *testing.T) {
	logger, _ := observedLogger()
	tapped := stream.Tap(fromSlice([]int{1, 2, 3}), logger)
	assert.Equal(t, []int{1, 2, 3}, stream.Collect(tapped))
}

func TestTap_LogsOnlyWhatWasRealized(t *testing.T) {
	logger, logs := observedLogger()

	tapped := stream.Tap(stream.RangeFrom(1), logger)
	// Construction realizes the first cell only.
	assert.Equal(t, 1, logs.FilterMessage("realized stream cell").Len())

	stream.CollectN(tapped, 3)
	assert.Equal(t, 3, logs.FilterMessage("realized stream cell").Len())
	assert.Equal(t, 0, logs.FilterMessage("stream exhausted").Len())
}

func TestTap_LogsExhaustionWithLength(t *testing.T) {
	logger, logs := observedLogger()

	stream.Collect(stream.Tap(fromSlice([]string{"a", "b"}), logger))

	exhausted := logs.FilterMessage("stream exhausted").All()
	require.Len(t, exhausted, 1)
	assert.Equal(t, int64(2), exhausted[0].ContextMap()["length"])
}

func TestTap_ProbeIdsDistinguishStreams(t *testing.T) {
	logger, logs := observedLogger()

	stream.Collect(stream.Tap(fromSlice([]int{1}), logger))
	stream.Collect(stream.Tap(fromSlice([]int{2}), logger))

	realized := logs.FilterMessage("realized stream cell").All()
	require.Len(t, realized, 2)
	assert.NotEqual(t,
		realized[0].ContextMap()["probe"],
		realized[1].ContextMap()["probe"],
	)
}

func TestTap_MemoizationKeepsLogsSingle(t *testing.T) {
	logger, logs := observedLogger()

	tapped := stream.Tap(fromSlice([]int{1, 2}), logger)
	stream.Collect(tapped)
	stream.Collect(tapped)

	// The second walk replays memoized cells; nothing is realized twice.
	assert.Equal(t, 2, logs.FilterMessage("realized stream cell").Len())
}
