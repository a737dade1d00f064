// Package booking validates event order dates against a plan's week-day
// rules and computes the order price.
package booking

import (
	"time"

	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
)

// ISOWeekday maps time.Weekday to ISO numbering (Monday=1 .. Sunday=7).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ParseDates converts the client's unix timestamps to UTC times.
func ParseDates(timestamps []int64) []time.Time {
	dates := make([]time.Time, 0, len(timestamps))
	for _, ts := range timestamps {
		dates = append(dates, time.Unix(ts, 0).UTC())
	}
	return dates
}

// Quote checks the candidate dates against the plan and returns the order
// price. Daily plans require every date to fall on an allowed week day and
// charge per date; package plans require the dates to cover exactly the
// plan's week-day set and charge a flat price.
func Quote(plan model.Plan, placeID int, dates []time.Time) (float64, error) {
	if plan.PlaceID != placeID {
		return 0, errs.ErrPlanPlaceMismatch
	}
	if len(plan.WeekDays) == 0 {
		return 0, errs.ErrEmptyWeekDays
	}

	planDays := make(map[int]bool, len(plan.WeekDays))
	for _, day := range plan.WeekDays {
		planDays[day] = true
	}

	dateDays := make(map[int]bool)
	for _, date := range dates {
		dateDays[ISOWeekday(date)] = true
	}

	switch plan.PlanType {
	case model.PlanDaily:
		for day := range dateDays {
			if !planDays[day] {
				return 0, errs.ErrDailyDaysNotAllowed
			}
		}
		return plan.Price * float64(len(dates)), nil

	case model.PlanPackage:
		if len(dateDays) != len(planDays) {
			return 0, errs.ErrPackageDaysMismatch
		}
		for day := range dateDays {
			if !planDays[day] {
				return 0, errs.ErrPackageDaysMismatch
			}
		}
		return plan.Price, nil
	}

	return 0, errs.ErrPlanNotFound
}

// QuoteAmendment revalidates new dates for an existing order. The order must
// still be open and the plan type must match the one the order was created
// with.
func QuoteAmendment(order model.EventOrder, plan model.Plan, dates []time.Time) (float64, error) {
	if order.Status != model.OrderOpen {
		return 0, errs.ErrOrderNotOpen
	}
	if plan.PlanType != order.PlanType {
		return 0, errs.ErrPlanTypeMismatch
	}
	return Quote(plan, order.PlaceID, dates)
}
