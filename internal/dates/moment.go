package dates

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour, Minute, Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// TimeOfDayFrom extracts the clock part of t.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Moment is the calendar date and time of day a note is recorded at.
type Moment struct {
	t time.Time
}

// Combine joins a date with an optional time. A nil tod takes the clock
// part of now.
func Combine(date time.Time, tod *TimeOfDay, now time.Time) Moment {
	clock := TimeOfDayFrom(now)
	if tod != nil {
		clock = *tod
	}
	return Moment{t: time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour, clock.Minute, clock.Second, 0, time.Local)}
}

// MomentOf truncates t to whole seconds in the local zone.
func MomentOf(t time.Time) Moment {
	t = t.In(time.Local)
	return Combine(t, nil, t)
}

// Time returns the moment as a time.Time in the local zone.
func (m Moment) Time() time.Time { return m.t }

// Date returns the moment at midnight.
func (m Moment) Date() time.Time {
	return startOfDay(m.t)
}

// DateString returns the ISO date.
func (m Moment) DateString() string { return m.t.Format(DateLayout) }

// FormatTimeOfDay renders the fixed HH:MM:SS storage form.
func FormatTimeOfDay(m Moment) string {
	return m.t.Format(TimeLayout)
}
