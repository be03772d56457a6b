package biztime

import (
	"testing"
	"time"
)

func TestAddMonths(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain month add", date(2026, time.March, 10), 1, date(2026, time.April, 10)},
		{"year rollover", date(2026, time.November, 15), 3, date(2027, time.February, 15)},
		{"jan 31 clamps to feb 28", date(2026, time.January, 31), 1, date(2026, time.February, 28)},
		{"jan 31 clamps to feb 29 in leap year", date(2028, time.January, 31), 1, date(2028, time.February, 29)},
		{"may 31 clamps to june 30", date(2026, time.May, 31), 1, date(2026, time.June, 30)},
		{"twelve months keeps day", date(2026, time.February, 28), 12, date(2027, time.February, 28)},
		{"zero months is identity", date(2026, time.July, 4), 0, date(2026, time.July, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.start, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestAddMonthsPreservesClock(t *testing.T) {
	start := time.Date(2026, time.January, 31, 14, 30, 45, 0, time.UTC)
	got := AddMonths(start, 1)
	want := time.Date(2026, time.February, 28, 14, 30, 45, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddMonths(%v, 1) = %v, want %v", start, got, want)
	}
}

func TestDateOf(t *testing.T) {
	MustInit(DefaultTimezone)

	// 18:00 UTC is already past midnight the next day in Asia/Jakarta (UTC+7).
	utcEvening := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	got := DateOf(utcEvening)
	if got.Day() != 11 {
		t.Errorf("DateOf(%v) = %v, want March 11 in business timezone", utcEvening, got)
	}
	if h, m, s := got.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("DateOf(%v) not truncated to midnight: %v", utcEvening, got)
	}
}
