package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns local wall-clock time. Day and week boundaries in
// the analytics follow the host timezone.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
