package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidLeaveType     = errors.New("leave type does not exist or is inactive")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrQuotaExceeded        = errors.New("requested days exceed the yearly leave quota")
	ErrAlreadyProcessed     = errors.New("leave request has already been approved or rejected")
)
