package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrAlreadyApplied = errors.New("already applied")
	ErrInternal       = errors.New("internal error")
)
