package carteira

import (
	"testing"
	"time"
)

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name     string
		start    Date
		months   int
		expected Date
	}{
		{"plain mid-month", NewDate(2026, time.January, 15), 1, NewDate(2026, time.February, 15)},
		{"Jan 31 into February", NewDate(2026, time.January, 31), 1, NewDate(2026, time.February, 28)},
		{"Jan 31 into leap February", NewDate(2024, time.January, 31), 1, NewDate(2024, time.February, 29)},
		{"Mar 31 into April", NewDate(2026, time.March, 31), 1, NewDate(2026, time.April, 30)},
		{"Jan 31 two months keeps day", NewDate(2026, time.January, 31), 2, NewDate(2026, time.March, 31)},
		{"year rollover", NewDate(2026, time.December, 15), 1, NewDate(2027, time.January, 15)},
		{"eleven months", NewDate(2026, time.January, 10), 11, NewDate(2026, time.December, 10)},
		{"zero months", NewDate(2026, time.January, 31), 0, NewDate(2026, time.January, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.AddMonths(tt.months); got != tt.expected {
				t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.start, tt.months, got, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2026-01-15", NewDate(2026, time.January, 15), false},
		{"2026-7-1", NewDate(2026, time.July, 1), false},
		{"15/01/2026", NewDate(2026, time.January, 15), false},
		{"invalid-date", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRangeContainsIsInclusive(t *testing.T) {
	r := NewRange(MustParse("2026-01-10"), MustParse("2026-01-20"))

	if !r.Contains(MustParse("2026-01-10")) {
		t.Error("range must contain its start")
	}
	if !r.Contains(MustParse("2026-01-20")) {
		t.Error("range must contain its end")
	}
	if r.Contains(MustParse("2026-01-09")) || r.Contains(MustParse("2026-01-21")) {
		t.Error("range must not contain dates outside its bounds")
	}
}

func TestNewRangeSwapsReversedBounds(t *testing.T) {
	r := NewRange(MustParse("2026-02-01"), MustParse("2026-01-01"))
	if r.From != MustParse("2026-01-01") || r.To != MustParse("2026-02-01") {
		t.Errorf("NewRange did not swap reversed bounds: %v", r)
	}
}

func TestPeriodRange(t *testing.T) {
	on := MustParse("2026-02-14")

	r := Monthly.Range(on)
	if r.From != MustParse("2026-02-01") || r.To != MustParse("2026-02-28") {
		t.Errorf("Monthly.Range = %v", r)
	}

	r = Yearly.Range(on)
	if r.From != MustParse("2026-01-01") || r.To != MustParse("2026-12-31") {
		t.Errorf("Yearly.Range = %v", r)
	}
}

func TestDateBRFormat(t *testing.T) {
	if got := MustParse("2026-01-05").BR(); got != "05/01/2026" {
		t.Errorf("BR() = %q, want 05/01/2026", got)
	}
}
