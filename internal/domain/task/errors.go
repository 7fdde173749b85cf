package task

import "errors"

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidStatus  = errors.New("invalid task status")
	ErrDeadlinePassed = errors.New("task deadline has already passed")
)
