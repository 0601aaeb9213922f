package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRun_LaterToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	next := nextRun(now, "23:59", time.UTC)

	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC), next)
}

func TestNextRun_AlreadyPassedRollsToTomorrow(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 59, 30, 0, time.UTC)

	next := nextRun(now, "23:59", time.UTC)

	assert.Equal(t, time.Date(2025, 3, 11, 23, 59, 0, 0, time.UTC), next)
}

func TestNextRun_HonorsTimezone(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 15:00 UTC is 22:00 in Jakarta, so tonight's 23:59 slot is still ahead.
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	next := nextRun(now, "23:59", jakarta)

	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 0, 0, jakarta), next)
	assert.True(t, next.After(now))
}

func TestNextRun_InvalidTimeFallsBackToMidnight(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	next := nextRun(now, "not-a-time", time.UTC)

	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), next)
}

func TestScheduler_StopCancelsDailyJob(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddDailyJob("test_job", "23:59", time.UTC, time.Minute, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	// The job waits for its daily slot, so it never fired.
	assert.Equal(t, int32(0), runs.Load())
}

func TestScheduler_RunOnceExecutesJobs(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddDailyJob("test_job", "23:59", time.UTC, time.Minute, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.AddJob("interval_job", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(2), runs.Load())
}
