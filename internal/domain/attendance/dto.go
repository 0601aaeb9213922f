package attendance

import (
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// ============= Request DTOs =============

type ClockInRequest struct {
	WorkMode string `json:"work_mode"`
}

func (r ClockInRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.WorkMode) {
		errs = append(errs, validator.ValidationError{Field: "work_mode", Message: "Work mode is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitReportRequest struct {
	ReportText string `json:"report_text"`
}

func (r SubmitReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ReportText) {
		errs = append(errs, validator.ValidationError{Field: "report_text", Message: "Report text is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RangeFilter is an inclusive date range, both ends "YYYY-MM-DD".
type RangeFilter struct {
	StartDate string
	EndDate   string
}

func (f RangeFilter) Validate() error {
	var errs validator.ValidationErrors
	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(f.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must not be before start date"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============= Response DTOs =============

type AttendanceResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	Date              string  `json:"date"`
	ClockInTime       *string `json:"clock_in_time,omitempty"`
	ClockOutTime      *string `json:"clock_out_time,omitempty"`
	BreakStartTime    *string `json:"break_start_time,omitempty"`
	BreakEndTime      *string `json:"break_end_time,omitempty"`
	Status            Status  `json:"status"`
	WorkMode          *string `json:"work_mode,omitempty"`
	ReportText        *string `json:"report_text,omitempty"`
	ReportSubmitted   bool    `json:"report_submitted"`
	ReportSubmittedAt *string `json:"report_submitted_at,omitempty"`
	WorkMinutes       *int    `json:"work_minutes,omitempty"`
}

// EmployeeStatsResponse is the monthly attendance breakdown for one employee.
type EmployeeStatsResponse struct {
	EmployeeID           string  `json:"employee_id"`
	Year                 int     `json:"year"`
	Month                int     `json:"month"`
	TotalDays            int     `json:"total_days"`
	PresentDays          int     `json:"present_days"`
	LateDays             int     `json:"late_days"`
	AbsentDays           int     `json:"absent_days"`
	OnLeaveDays          int     `json:"on_leave_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	ReportSubmissionRate float64 `json:"report_submission_rate"`
}

// DayStatsResponse is the company-wide breakdown for a single date.
type DayStatsResponse struct {
	Date    string `json:"date"`
	Total   int    `json:"total"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
	OnLeave int    `json:"on_leave"`
}
