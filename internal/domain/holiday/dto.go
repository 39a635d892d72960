package holiday

import (
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

type HolidayStatusResponse struct {
	IsHoliday bool `json:"isHoliday"`
}

type SetHolidayRequest struct {
	Date      string `json:"date"`
	IsHoliday bool   `json:"isHoliday"`
}

func (r *SetHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListHolidayResponse struct {
	Month    string   `json:"month"`
	Holidays []string `json:"holidays"`
}
