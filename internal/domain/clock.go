package domain

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock truncates to microseconds, the finest precision Postgres keeps.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
