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
	valid := []string{"2025-06-30", "2024-02-29", "2000-01-01"}
	invalid := []string{"2025-02-30", "30-06-2025", "2025/06/30", "2025-6-30", "", "yesterday"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"24:00", "9:30:00", "0930", "09:60", "", "noon"}
	for _, c := range valid {
		if _, ok := IsValidClockTime(c); !ok {
			t.Errorf("IsValidClockTime(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if _, ok := IsValidClockTime(c); ok {
			t.Errorf("IsValidClockTime(%q) = true, want false", c)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "year", Message: "must be between 2000 and 2100"},
	}

	want := "name: is required; year: must be between 2000 and 2100"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["name"] != "is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
