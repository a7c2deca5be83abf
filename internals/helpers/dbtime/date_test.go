package dbtime

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	now := time.Now()
	midnight := StartOfDay(now)

	if midnight.Hour() != 0 || midnight.Minute() != 0 || midnight.Second() != 0 {
		t.Errorf("StartOfDay() should return 00:00:00")
	}
	if midnight.Year() != now.Year() || midnight.Month() != now.Month() || midnight.Day() != now.Day() {
		t.Errorf("StartOfDay() should preserve date")
	}
	if midnight.Location() != now.Location() {
		t.Errorf("StartOfDay() location = %v, want %v", midnight.Location(), now.Location())
	}
}

func TestParseDateLocal(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		wantErr bool
	}{
		{
			name:    "valid date string",
			dateStr: "2026-08-24",
			wantErr: false,
		},
		{
			name:    "invalid date string",
			dateStr: "invalid",
			wantErr: true,
		},
		{
			name:    "empty string",
			dateStr: "",
			wantErr: true,
		},
		{
			name:    "time component rejected",
			dateStr: "2026-08-24T10:00:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDateLocal(tt.dateStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDateLocal(%q) error = %v, wantErr %v", tt.dateStr, err, tt.wantErr)
			}
		})
	}

	parsed, err := ParseDateLocal("2026-08-24")
	if err != nil {
		t.Fatalf("ParseDateLocal() failed: %v", err)
	}
	if parsed.Location() != time.Local {
		t.Errorf("ParseDateLocal() location = %v, want %v", parsed.Location(), time.Local)
	}
	if parsed.Hour() != 0 || parsed.Minute() != 0 || parsed.Second() != 0 {
		t.Errorf("ParseDateLocal() should return start of day (00:00:00)")
	}
}

func TestMonthRange(t *testing.T) {
	ref := time.Date(2026, time.February, 17, 13, 45, 0, 0, time.Local)
	from, to := MonthRange(ref)

	if from.Year() != 2026 || from.Month() != time.February || from.Day() != 1 {
		t.Errorf("MonthRange() from = %v, want 2026-02-01", from)
	}
	if to.Year() != 2026 || to.Month() != time.March || to.Day() != 1 {
		t.Errorf("MonthRange() to = %v, want 2026-03-01", to)
	}
	if from.Hour() != 0 || to.Hour() != 0 {
		t.Errorf("MonthRange() bounds should be at midnight")
	}

	// December rolls into January of the next year
	_, to = MonthRange(time.Date(2026, time.December, 31, 0, 0, 0, 0, time.Local))
	if to.Year() != 2027 || to.Month() != time.January {
		t.Errorf("MonthRange() december upper bound = %v, want 2027-01-01", to)
	}
}
