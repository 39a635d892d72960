package holiday

import "errors"

var (
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
)
