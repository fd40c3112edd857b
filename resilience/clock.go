package resilience

import "time"

// Clock abstracts the time source so breaker recovery can be tested
// without sleeping.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
