package errors

import "errors"

var (
	ErrNotFound = errors.New("tour not found")

	ErrDuplicate = errors.New("tour slug already exists")
)
