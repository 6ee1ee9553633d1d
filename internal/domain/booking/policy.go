package booking

import "time"

// AdmissionPolicy decides whether a requested slot may enter the
// admission pipeline. Window bounds are exclusive: an endpoint at
// exactly the open or close hour is outside business hours.
type AdmissionPolicy struct {
	open  time.Duration
	close time.Duration
}

func NewAdmissionPolicy(openHour, closeHour int) AdmissionPolicy {
	return AdmissionPolicy{
		open:  time.Duration(openHour) * time.Hour,
		close: time.Duration(closeHour) * time.Hour,
	}
}

// Validate applies the admission rules against an explicit now, so the
// decision is reproducible under test. The business-window rule keeps
// the historical compound form: a slot is rejected only when neither
// endpoint falls on a weekday, or neither endpoint falls within
// business hours.
func (p AdmissionPolicy) Validate(slot TimeSlot, now time.Time) error {
	if !slot.Start().After(now) || !slot.End().After(now) {
		return ErrNotInFuture
	}

	if (!isWeekday(slot.Start()) && !isWeekday(slot.End())) ||
		(!p.withinBusinessHours(slot.Start()) && !p.withinBusinessHours(slot.End())) {
		return ErrOutsideBusinessWindow
	}

	return nil
}

func (p AdmissionPolicy) withinBusinessHours(t time.Time) bool {
	d := timeOfDay(t)
	return d > p.open && d < p.close
}

func isWeekday(t time.Time) bool {
	day := t.Weekday()
	return day != time.Saturday && day != time.Sunday
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}
