package schedule

import (
	"testing"

	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairs(numbers ...int) []PairRequest {
	out := make([]PairRequest, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, PairRequest{Number: n, Type: "regular"})
	}
	return out
}

func TestSaveScheduleRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       SaveScheduleRequest
		wantField string
	}{
		{"valid three pairs", SaveScheduleRequest{Date: "2024-03-05", Pairs: pairs(2, 3, 4)}, ""},
		{"valid four pairs", SaveScheduleRequest{Date: "2024-03-05", Pairs: pairs(1, 2, 3, 4)}, ""},
		{"empty clears the day", SaveScheduleRequest{Date: "2024-03-05"}, ""},
		{"five pairs", SaveScheduleRequest{Date: "2024-03-05", Pairs: pairs(1, 2, 3, 4, 5)}, "pairs"},
		{"first and fifth", SaveScheduleRequest{Date: "2024-03-05", Pairs: pairs(1, 5)}, "pairs"},
		{"missing date", SaveScheduleRequest{Pairs: pairs(2)}, "date"},
		{"bad date", SaveScheduleRequest{Date: "05.03.2024", Pairs: pairs(2)}, "date"},
		{"number out of range", SaveScheduleRequest{Date: "2024-03-05", Pairs: pairs(6)}, "pairs[0].number"},
		{"duplicate number", SaveScheduleRequest{Date: "2024-03-05", Pairs: pairs(2, 2)}, "pairs[1].number"},
		{
			"unknown type",
			SaveScheduleRequest{Date: "2024-03-05", Pairs: []PairRequest{{Number: 2, Type: "lecture"}}},
			"pairs[0].type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

func TestPairType_Hours(t *testing.T) {
	assert.Equal(t, 2, PairTypeRegular.Hours())
	assert.Equal(t, 1, PairTypeOther.Hours())
	assert.False(t, PairType("lecture").Valid())
}

func TestSchedule_Pair(t *testing.T) {
	s := Schedule{Pairs: []Pair{{Number: 2, Type: PairTypeRegular}, {Number: 3, Type: PairTypeOther}}}

	p, ok := s.Pair(3)
	assert.True(t, ok)
	assert.Equal(t, PairTypeOther, p.Type)

	_, ok = s.Pair(1)
	assert.False(t, ok)
}
