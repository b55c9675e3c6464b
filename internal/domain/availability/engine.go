package availability

import (
	"sort"
	"time"
)

// DayLayout is the calendar-date format used across the API.
const DayLayout = "2006-01-02"

// BlockedDate is a single admin-blocked calendar day.
type BlockedDate struct {
	Date   time.Time
	Reason string
}

// StayRange is an occupied stay: check-in inclusive, check-out exclusive.
// The guest departs on the check-out morning, so that night is free and
// the check-out day is a valid arrival day for the next guest.
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights returns the number of occupied nights. Zero for degenerate or
// malformed ranges.
func (r StayRange) Nights() int {
	in, out := Day(r.CheckIn), Day(r.CheckOut)
	if !out.After(in) {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

// DateSet is a membership set of ISO calendar dates (YYYY-MM-DD).
type DateSet map[string]struct{}

// Contains reports whether the given ISO date is in the set.
func (s DateSet) Contains(iso string) bool {
	_, ok := s[iso]
	return ok
}

// Sorted returns the dates ascending, for calendar rendering.
func (s DateSet) Sorted() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Day truncates a timestamp to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// UnavailableDates computes the union of every blocked date and every
// occupied night across the given stay ranges. Pure and deterministic:
// the same inputs always produce the same set. Rows with zero dates are
// skipped so one bad record cannot take down the whole availability view;
// a range with check-out on or before check-in contributes nothing.
func UnavailableDates(blocks []BlockedDate, ranges []StayRange) DateSet {
	set := make(DateSet)

	for _, b := range blocks {
		if b.Date.IsZero() {
			continue
		}
		set[Day(b.Date).Format(DayLayout)] = struct{}{}
	}

	for _, r := range ranges {
		if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
			continue
		}
		out := Day(r.CheckOut)
		for d := Day(r.CheckIn); d.Before(out); d = d.AddDate(0, 0, 1) {
			set[d.Format(DayLayout)] = struct{}{}
		}
	}

	return set
}

// CheckRange validates a candidate stay against the unavailable set and
// returns every conflicting date in [checkIn, checkOut), ascending. An
// empty result means the whole range is free. A candidate with
// checkOut <= checkIn is a validation error, never a false "available".
func CheckRange(checkIn, checkOut time.Time, unavailable DateSet) ([]string, error) {
	in, out := Day(checkIn), Day(checkOut)
	if !out.After(in) {
		return nil, ErrInvalidRange
	}

	var conflicts []string
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		if iso := d.Format(DayLayout); unavailable.Contains(iso) {
			conflicts = append(conflicts, iso)
		}
	}
	return conflicts, nil
}
