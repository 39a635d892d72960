package schedule

import "errors"

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPairNotScheduled  = errors.New("pair is not in the schedule for this date")
)
