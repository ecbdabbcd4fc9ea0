package stream

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tap returns a pass-through copy of s that logs, at debug level, every cell
// the consumer realizes: its 1-based position and rendered head, plus a
// probe id that keeps traces from separately tapped streams apart. Reaching
// the end of the stream logs once more with the total length.
//
// The head of s is logged immediately, since constructing the first tapped
// cell observes it; everything after that is logged only when the
// corresponding tail is forced. Tap never forces ahead of its consumer.
func Tap[T any](s Stream[T], logger *zap.Logger) Stream[T] {
	return tap(s, logger, uuid.New().String(), 1)
}

func tap[T any](s Stream[T], logger *zap.Logger, probe string, pos int) Stream[T] {
	cell, ok := s.(*consCell[T])
	if !ok {
		logger.Debug("stream exhausted",
			zap.String("probe", probe),
			zap.Int("length", pos-1),
		)
		return s
	}
	logger.Debug("realized stream cell",
		zap.String("probe", probe),
		zap.Int("position", pos),
		zap.String("value", fmt.Sprintf("%v", cell.value)),
	)
	return New(cell.value, func() Stream[T] {
		return tap(cell.rest.Force(), logger, probe, pos+1)
	})
}
