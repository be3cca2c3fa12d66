package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidTimeRange = errors.New("end date must not be before start date")
)
