package billing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		activation   time.Time
		wantDays     int
		wantAmount   float64
		wantCycleDay int
		wantNext     time.Time
	}{
		{
			// Reference case: R899 on 18 Nov 2025, 30-day month.
			name:         "mid month to 25th",
			price:        899,
			activation:   date(2025, time.November, 18),
			wantDays:     7,
			wantAmount:   209.77,
			wantCycleDay: 25,
			wantNext:     date(2025, time.November, 25),
		},
		{
			// On the 1st the customer is billed a full cycle away,
			// not same-day. Kept as-is, see package docs.
			name:         "first of month quirk",
			price:        899,
			activation:   date(2025, time.November, 1),
			wantDays:     30,
			wantAmount:   899,
			wantCycleDay: 1,
			wantNext:     date(2025, time.December, 1),
		},
		{
			name:         "second of month to 5th",
			price:        899,
			activation:   date(2025, time.November, 2),
			wantDays:     3,
			wantAmount:   89.9,
			wantCycleDay: 5,
			wantNext:     date(2025, time.November, 5),
		},
		{
			name:         "on an anchor moves to the next one",
			price:        899,
			activation:   date(2025, time.November, 5),
			wantDays:     10,
			wantAmount:   299.67,
			wantCycleDay: 15,
			wantNext:     date(2025, time.November, 15),
		},
		{
			name:         "after 25th wraps to next month",
			price:        899,
			activation:   date(2025, time.November, 26),
			wantDays:     5,
			wantAmount:   149.83,
			wantCycleDay: 1,
			wantNext:     date(2025, time.December, 1),
		},
		{
			name:         "31 day month",
			price:        620,
			activation:   date(2025, time.December, 20),
			wantDays:     5,
			wantAmount:   100,
			wantCycleDay: 25,
			wantNext:     date(2025, time.December, 25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.price, tt.activation)

			if got.Days != tt.wantDays {
				t.Errorf("Days = %d, want %d", got.Days, tt.wantDays)
			}
			if got.Amount != tt.wantAmount {
				t.Errorf("Amount = %v, want %v", got.Amount, tt.wantAmount)
			}
			if got.CycleDay != tt.wantCycleDay {
				t.Errorf("CycleDay = %d, want %d", got.CycleDay, tt.wantCycleDay)
			}
			if !got.NextBillingDate.Equal(tt.wantNext) {
				t.Errorf("NextBillingDate = %v, want %v", got.NextBillingDate, tt.wantNext)
			}
		})
	}
}

func TestCalculatePartialDayRoundsUp(t *testing.T) {
	// Activation at 14:30 still charges the whole remaining day.
	at := time.Date(2025, time.November, 18, 14, 30, 0, 0, time.UTC)
	got := Calculate(899, at)
	if got.Days != 7 {
		t.Errorf("Days = %d, want 7", got.Days)
	}
}

func TestCalculateNeverNegative(t *testing.T) {
	for day := 1; day <= 30; day++ {
		got := Calculate(0.01, date(2025, time.November, day))
		if got.Amount < 0 {
			t.Errorf("day %d: Amount = %v, want >= 0", day, got.Amount)
		}
		if got.Days < 0 {
			t.Errorf("day %d: Days = %v, want >= 0", day, got.Days)
		}
	}
}

func TestForFutureStart(t *testing.T) {
	start := date(2026, time.January, 15)
	got := ForFutureStart(start)

	if got.Amount != 0 || got.Days != 0 {
		t.Errorf("future start must not accrue pro-rata, got amount=%v days=%d", got.Amount, got.Days)
	}
	if got.CycleDay != 15 {
		t.Errorf("CycleDay = %d, want 15", got.CycleDay)
	}
	if !got.NextBillingDate.Equal(start) {
		t.Errorf("NextBillingDate = %v, want %v", got.NextBillingDate, start)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		in   time.Time
		want int
	}{
		{date(2025, time.November, 10), 30},
		{date(2025, time.December, 1), 31},
		{date(2024, time.February, 5), 29},
		{date(2025, time.February, 5), 28},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.in); got != tt.want {
			t.Errorf("DaysInMonth(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
