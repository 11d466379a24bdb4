package member

import (
	"errors"
	"time"
)

var ErrUnknownPlan = errors.New("unknown membership type")

// ExpiryDate returns when a membership started on joining runs out.
// Calendar arithmetic follows time.AddDate, which normalizes month-end
// overflow: Jan 31 + 1 month lands on Mar 2 (Mar 3 in leap-adjacent
// years), it does not clamp to the last day of February.
func ExpiryDate(joining time.Time, plan MembershipType) (time.Time, error) {
	switch plan {
	case PlanMonthly:
		return joining.AddDate(0, 1, 0), nil
	case PlanHalfYearly:
		return joining.AddDate(0, 6, 0), nil
	case PlanYearly:
		return joining.AddDate(1, 0, 0), nil
	}
	return time.Time{}, ErrUnknownPlan
}

// ReminderWindow returns the half-open interval [start, end) covering
// the single calendar day exactly days from now, in now's location.
// Targeting one day instead of the whole now..now+N range keeps the
// daily sweep from re-notifying the same member N days in a row.
func ReminderWindow(now time.Time, days int) (start, end time.Time) {
	target := now.AddDate(0, 0, days)
	start = time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, target.Location())
	end = start.AddDate(0, 0, 1)
	return start, end
}
