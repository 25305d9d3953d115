package booking

import "time"

// Day truncates t to UTC midnight. All stay dates are day-granular.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WithCheckIn sets the check-in date. Dates before today are rejected and the
// draft is returned unchanged. If the new check-in lands on or after the
// current check-out, the check-out is cleared rather than leaving a
// negative-night range behind; the caller must pick a new one.
func (d Draft) WithCheckIn(day, today time.Time) (Draft, error) {
	day = Day(day)

	if day.Before(Day(today)) {
		fe := newFieldError()
		fe.add("checkIn", "check-in date must not be in the past")
		return d, fe
	}

	d.CheckIn = day

	if !d.CheckOut.IsZero() && !d.CheckOut.After(day) {
		d.CheckOut = time.Time{}
	}

	return d, nil
}

// WithCheckOut sets the check-out date. It is rejected while no check-in is
// chosen, and must be strictly after the check-in.
func (d Draft) WithCheckOut(day time.Time) (Draft, error) {
	day = Day(day)
	fe := newFieldError()

	if d.CheckIn.IsZero() {
		fe.add("checkOut", "choose a check-in date first")
		return d, fe
	}

	if !day.After(d.CheckIn) {
		fe.add("checkOut", "check-out date must be after check-in")
		return d, fe
	}

	d.CheckOut = day
	return d, nil
}

// DatesComplete reports whether both stay dates are chosen. Reducers keep the
// ordering invariant, so a complete pair is always a valid range.
func (d Draft) DatesComplete() bool {
	return !d.CheckIn.IsZero() && !d.CheckOut.IsZero()
}
