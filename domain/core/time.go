package core

import (
	"time"
)

// TimestampLayout renders DD/MM/YYYY HH:MM:SS
const TimestampLayout = "02/01/2006 15:04:05"

// Clock supplies the current time
type Clock func() time.Time

// SystemClock returns local wall-clock time
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock always returns t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Now returns the current time, using the system clock when c is nil
func (c Clock) Now() time.Time {
	if c == nil {
		return SystemClock()
	}
	return c()
}

// FormatTimestamp formats t with TimestampLayout in t's own location
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
