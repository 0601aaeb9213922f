package alert

import "errors"

// Alert domain errors
var (
	ErrInvalidAlertType = errors.New("invalid alert type")
	ErrAlertNotFound    = errors.New("alert not found")
)
