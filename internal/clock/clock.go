package clock

import "time"

// Clock abstracts the ambient current time so generation runs are
// reproducible in tests. Production code uses the real clock; tests freeze it.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns a Clock backed by the system time in UTC
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}
