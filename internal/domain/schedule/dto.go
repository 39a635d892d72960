package schedule

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

type PairRequest struct {
	Number int    `json:"number"`
	Type   string `json:"type"`
}

type SaveScheduleRequest struct {
	Date         string        `json:"date"`
	Pairs        []PairRequest `json:"pairs"`
	ForceWorkday bool          `json:"force_workday"`
}

func (r *SaveScheduleRequest) Validate() error {
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

	if len(r.Pairs) > MaxPairsPerDate {
		errs = append(errs, validator.ValidationError{
			Field:   "pairs",
			Message: fmt.Sprintf("at most %d pairs are allowed per day", MaxPairsPerDate),
		})
	}

	seen := make(map[int]bool, len(r.Pairs))
	for i, p := range r.Pairs {
		field := fmt.Sprintf("pairs[%d]", i)
		if p.Number < MinPairNumber || p.Number > MaxPairNumber {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".number",
				Message: fmt.Sprintf("number must be between %d and %d", MinPairNumber, MaxPairNumber),
			})
		} else if seen[p.Number] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".number",
				Message: fmt.Sprintf("pair %d is listed twice", p.Number),
			})
		}
		seen[p.Number] = true

		if !PairType(p.Type).Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".type",
				Message: "type must be one of: " + strings.Join(PairTypeValues, ", "),
			})
		}
	}

	if seen[MinPairNumber] && seen[MaxPairNumber] {
		errs = append(errs, validator.ValidationError{
			Field:   "pairs",
			Message: fmt.Sprintf("pairs %d and %d cannot be scheduled on the same day", MinPairNumber, MaxPairNumber),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PairResponse struct {
	Number int    `json:"number"`
	Type   string `json:"type"`
}

type ScheduleResponse struct {
	Date  string         `json:"date"`
	Pairs []PairResponse `json:"pairs"`
}

// GetScheduleResponse carries a nil Schedule when the date has no pairs.
type GetScheduleResponse struct {
	Schedule *ScheduleResponse `json:"schedule"`
}

func ToResponse(s Schedule) ScheduleResponse {
	pairs := make([]PairResponse, 0, len(s.Pairs))
	for _, p := range s.Pairs {
		pairs = append(pairs, PairResponse{Number: p.Number, Type: string(p.Type)})
	}
	return ScheduleResponse{
		Date:  s.Date.Format("2006-01-02"),
		Pairs: pairs,
	}
}
