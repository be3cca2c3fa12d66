package errors

import "errors"

var (
	ErrNotFound = errors.New("user not found")

	ErrDuplicate = errors.New("username already exists")
)
