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

func TestIsValidLatitude(t *testing.T) {
	valid := []float64{0, 19.4326, -90, 90, 89.999}
	invalid := []float64{-90.0001, 90.0001, 180, -180}
	for _, lat := range valid {
		if !IsValidLatitude(lat) {
			t.Errorf("IsValidLatitude(%f) = false, want true", lat)
		}
	}
	for _, lat := range invalid {
		if IsValidLatitude(lat) {
			t.Errorf("IsValidLatitude(%f) = true, want false", lat)
		}
	}
}

func TestIsValidLongitude(t *testing.T) {
	valid := []float64{0, -99.1332, -180, 180}
	invalid := []float64{-180.0001, 180.0001, 360}
	for _, lng := range valid {
		if !IsValidLongitude(lng) {
			t.Errorf("IsValidLongitude(%f) = false, want true", lng)
		}
	}
	for _, lng := range invalid {
		if IsValidLongitude(lng) {
			t.Errorf("IsValidLongitude(%f) = true, want false", lng)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:00", "13:45", "23:59"}
	invalid := []string{"24:00", "8:00", "08:60", "0800", "08:00:00", "", "ab:cd"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"13:45", 825},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := ParseClockTime(c.input)
		if err != nil {
			t.Errorf("ParseClockTime(%q) returned error: %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("ParseClockTime(%q) = %d, want %d", c.input, got, c.want)
		}
	}

	for _, s := range []string{"", "8:00", "24:00", "12:60", "noon"} {
		if _, err := ParseClockTime(s); err == nil {
			t.Errorf("ParseClockTime(%q) returned no error", s)
		}
	}
}

func TestIsValidWeekdays(t *testing.T) {
	cases := []struct {
		name string
		days []int
		want bool
	}{
		{"monday to friday", []int{1, 2, 3, 4, 5}, true},
		{"sunday only", []int{0}, true},
		{"full week", []int{0, 1, 2, 3, 4, 5, 6}, true},
		{"empty", []int{}, false},
		{"out of range high", []int{7}, false},
		{"out of range low", []int{-1}, false},
		{"duplicate", []int{1, 1}, false},
		{"too many", []int{0, 1, 2, 3, 4, 5, 6, 0}, false},
	}
	for _, c := range cases {
		got := IsValidWeekdays(c.days)
		if got != c.want {
			t.Errorf("%s: IsValidWeekdays(%v) = %v, want %v", c.name, c.days, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-15"); !ok {
		t.Error("IsValidDate(\"2024-01-15\") = false, want true")
	}
	for _, s := range []string{"15-01-2024", "2024/01/15", "2024-13-01", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00-06:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15 10:30:00", "2024-01-15", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}
