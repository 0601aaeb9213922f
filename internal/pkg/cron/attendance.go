package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/config"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
)

// AttendanceJobs wires attendance background jobs into the scheduler.
type AttendanceJobs struct {
	attendanceSvc attendance.Service
	loc           *time.Location
}

func NewAttendanceJobs(attendanceSvc attendance.Service, loc *time.Location) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		loc:           loc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, cfg config.AttendanceConfig) {
	scheduler.AddDailyJob("mark_absent_employees", cfg.SweepTime, j.loc, cfg.SweepBackoff, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills an absent record for every active employee
// without attendance on the current day in the configured timezone.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	today := time.Now().In(j.loc)

	slog.Info("Cron: Starting mark absent employees job", "date", today.Format("2006-01-02"))

	count, err := j.attendanceSvc.MarkAbsentEmployees(ctx, time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC))
	if err != nil {
		return err
	}

	slog.Info("Cron: Marked absent employees", "count", count)
	return nil
}
