package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-03-05", "2024-02-29", "1999-12-31"}
	invalid := []string{"2023-02-29", "2024-13-01", "2024-3-5", "05.03.2024", "", "2024-03-05T00:00:00Z"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	got, ok := IsValidMonth("2024-03")
	if !ok {
		t.Fatalf("IsValidMonth(2024-03) = false, want true")
	}
	if got.Day() != 1 || got.Month() != 3 || got.Year() != 2024 {
		t.Errorf("IsValidMonth(2024-03) = %v, want first of March 2024", got)
	}
	for _, s := range []string{"2024-3", "2024-00", "2024-03-01", "march", ""} {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "pairs", Message: "at most 4 pairs"},
	}
	if got := errs.Error(); got != "date: date is required; pairs: at most 4 pairs" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if len(m) != 2 || m["pairs"] != "at most 4 pairs" {
		t.Errorf("ToMap() = %v", m)
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"regular", "other"}
	if !IsInSlice("other", slice) {
		t.Error("IsInSlice(other) = false, want true")
	}
	if IsInSlice("lecture", slice) {
		t.Error("IsInSlice(lecture) = true, want false")
	}
}
