package errors

import "errors"

var (
	ErrNotFound = errors.New("destination not found")

	ErrDuplicate = errors.New("destination slug already exists")
)
