package clock

import "time"

// Clock abstracts the current instant so expiry checks are testable.
type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time {
	return time.Now()
}
