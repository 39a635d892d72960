package attendance

import "errors"

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)
