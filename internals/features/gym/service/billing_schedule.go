package service

import (
	"math"
	"time"

	"academia_backend/internals/helpers/dbtime"
)

// BillingCycleDays is the length of one monthly installment.
const BillingCycleDays = 30

type Installment struct {
	Number  int // 1-based
	DueDate time.Time
	Amount  float64
}

// InstallmentCount is ceil(days/30), never less than 1.
func InstallmentCount(durationDays int) int {
	n := int(math.Ceil(float64(durationDays) / BillingCycleDays))
	if n < 1 {
		return 1
	}
	return n
}

// EndDate is start + duration in calendar days.
func EndDate(start time.Time, durationDays int) time.Time {
	return dbtime.AddDays(dbtime.StartOfDay(start), durationDays)
}

// BuildSchedule splits price evenly (no rounding) over the installments, each
// due 30 days after the previous one, the first at start+30.
func BuildSchedule(start time.Time, durationDays int, price float64) []Installment {
	start = dbtime.StartOfDay(start)
	n := InstallmentCount(durationDays)
	amount := price / float64(n)

	out := make([]Installment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Installment{
			Number:  i + 1,
			DueDate: dbtime.AddDays(start, BillingCycleDays*(i+1)),
			Amount:  amount,
		})
	}
	return out
}
