package student

import "errors"

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentOnLeave  = errors.New("student is on academic leave")
)
