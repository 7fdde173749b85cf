package overtime

import "errors"

var (
	ErrOvertimeRequestNotFound = errors.New("overtime request not found")
	ErrInvalidStatus           = errors.New("invalid overtime request status")
)
