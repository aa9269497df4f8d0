// Package billing computes pro-rata charges for mid-cycle service
// activations. CircleTel bills on fixed calendar anchors (1st, 5th, 15th,
// 25th); a customer activated between anchors pays a pro-rated amount for
// the partial period, then the full monthly price from the next anchor.
package billing

import (
	"math"
	"time"
)

// ProRata is the billing outcome of an activation. It is ephemeral:
// recomputed on every request, never cached.
type ProRata struct {
	Amount          float64
	Days            int
	NextBillingDate time.Time
	CycleDay        int
}

// Calculate returns the pro-rata charge for activating at activationDate
// with the given monthly price.
//
// The next billing date is the smallest anchor strictly greater than the
// activation day-of-month, in the same month; after the 25th it wraps to
// the 1st of the next month. Activating exactly on the 1st also bills on
// the 1st of the NEXT month (a full cycle away) rather than same-day; that
// is long-standing behavior and deliberately kept.
func Calculate(monthlyPrice float64, activationDate time.Time) ProRata {
	day := activationDate.Day()
	year, month, _ := activationDate.Date()
	loc := activationDate.Location()

	var cycleDay int
	var next time.Time

	switch {
	case day <= 1:
		cycleDay = 1
		next = time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	case day < 5:
		cycleDay = 5
		next = time.Date(year, month, 5, 0, 0, 0, 0, loc)
	case day < 15:
		cycleDay = 15
		next = time.Date(year, month, 15, 0, 0, 0, 0, loc)
	case day < 25:
		cycleDay = 25
		next = time.Date(year, month, 25, 0, 0, 0, 0, loc)
	default:
		cycleDay = 1
		next = time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	}

	days := int(math.Ceil(next.Sub(activationDate).Hours() / 24))
	dailyRate := monthlyPrice / float64(DaysInMonth(activationDate))
	amount := math.Round(dailyRate*float64(days)*100) / 100

	return ProRata{
		Amount:          amount,
		Days:            days,
		NextBillingDate: next,
		CycleDay:        cycleDay,
	}
}

// ForFutureStart handles an admin-supplied billing start date: no pro-rata
// charge accrues before billing begins, and the cycle day is pinned to the
// chosen date.
func ForFutureStart(startDate time.Time) ProRata {
	return ProRata{
		Amount:          0,
		Days:            0,
		NextBillingDate: startDate,
		CycleDay:        startDate.Day(),
	}
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	year, month, _ := t.Date()
	return time.Date(year, month+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
