package server

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-circq/pkg/datastructs/queue"
)

// ReportStats logs the queue's occupancy every interval until ctx is done,
// then logs it once more. A non-positive interval only logs the final line.
func ReportStats[T any](ctx context.Context, q *queue.Locked[T], interval time.Duration, log *zap.Logger) error {
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case <-ticker.C:
				logStats(log, "queue.stats", q)
			}
		}
	} else {
		<-ctx.Done()
	}

	logStats(log, "queue.stats.final", q)
	return nil
}

func logStats[T any](log *zap.Logger, msg string, q *queue.Locked[T]) {
	snap := q.Snapshot()
	log.Info(msg,
		zap.Int("size", snap.Size),
		zap.Int("capacity", snap.Capacity),
		zap.Stringer("state", snap.State),
	)
}
