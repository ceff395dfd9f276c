package regform

import "time"

// Clock schedules single-shot timers. The production implementation is
// the system clock; tests inject a fake so the debounce and dismissal
// timers can be advanced virtually.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancelable single-shot timer.
type Timer interface {
	Stop() bool
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns a Clock backed by package time.
func SystemClock() Clock {
	return systemClock{}
}
