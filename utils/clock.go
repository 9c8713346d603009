package utils

import "time"

// Clock abstracts time.Now so the timer and date-bucketing logic can be
// driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using time.Now()
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
