package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job represents a scheduled job
type Job struct {
	Name string
	Fn   func(ctx context.Context) error

	// Interval jobs fire on a fixed ticker. Daily jobs fire once per day at
	// At ("15:04" wall clock) in Location, retrying once after RetryBackoff
	// when the run fails.
	Interval     time.Duration
	At           string
	Location     *time.Location
	RetryBackoff time.Duration
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewScheduler creates a new cron scheduler
func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob adds a fixed-interval job to the scheduler
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// AddDailyJob adds a job that runs once per day at the wall-clock time in loc
func (s *Scheduler) AddDailyJob(name string, at string, loc *time.Location, retryBackoff time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:         name,
		At:           at,
		Location:     loc,
		RetryBackoff: retryBackoff,
		Fn:           fn,
	})
	slog.Info("Cron job registered", "name", name, "at", at, "timezone", loc.String())
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		if job.At != "" {
			go s.runDailyJob(job)
		} else {
			go s.runIntervalJob(job)
		}
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop gracefully stops all scheduled jobs
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) runIntervalJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	// Run immediately on start
	s.executeJob(job)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(job)
		}
	}
}

// runDailyJob fires the job at its wall-clock time each day. A failed run is
// retried once after the backoff; whatever the outcome, the job then waits
// for the next day's slot.
func (s *Scheduler) runDailyJob(job Job) {
	defer s.wg.Done()

	for {
		wait := time.Until(nextRun(time.Now(), job.At, job.Location))
		timer := time.NewTimer(wait)

		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-timer.C:
		}

		if err := s.executeJob(job); err != nil && job.RetryBackoff > 0 {
			retry := time.NewTimer(job.RetryBackoff)
			select {
			case <-s.ctx.Done():
				retry.Stop()
				slog.Info("Cron job stopping", "name", job.Name)
				return
			case <-retry.C:
				s.executeJob(job)
			}
		}
	}
}

// executeJob executes a job and logs results
func (s *Scheduler) executeJob(job Job) error {
	start := time.Now()
	slog.Debug("Cron job starting", "name", job.Name)

	err := job.Fn(s.ctx)
	if err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
	return err
}

// RunOnce runs all jobs once (useful for testing)
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}

// nextRun returns the next occurrence of the "15:04" wall-clock time in loc,
// strictly after now.
func nextRun(now time.Time, at string, loc *time.Location) time.Time {
	t, err := time.Parse("15:04", at)
	if err != nil {
		t, _ = time.Parse("15:04", "00:00")
	}

	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
