package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/go-circq/pkg/datastructs/queue"
)

func TestReportStats_TicksUntilCancel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	q, err := queue.NewLocked[Payload](4)
	require.NoError(t, err)
	q.Enqueue(Payload(`1`))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ReportStats(ctx, q, 5*time.Millisecond, zap.New(core)) }()

	require.Eventually(t, func() bool {
		return logs.FilterMessage("queue.stats").Len() >= 2
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	final := logs.FilterMessage("queue.stats.final").All()
	require.Len(t, final, 1)
	fields := final[0].ContextMap()
	assert.Equal(t, int64(1), fields["size"])
	assert.Equal(t, int64(4), fields["capacity"])
	assert.Equal(t, "partial", fields["state"])
}

func TestReportStats_Disabled(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	q, err := queue.NewLocked[Payload](1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, ReportStats(ctx, q, 0, zap.New(core)))
	assert.Equal(t, 0, logs.FilterMessage("queue.stats").Len())
	assert.Equal(t, 1, logs.FilterMessage("queue.stats.final").Len())
}
