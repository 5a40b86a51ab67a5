// Package clock provides the process-wide time source.
// Consumers declare their own Clock interface; this package supplies the
// system implementation injected at wiring time.
package clock

import "time"

// systemClock reads the wall clock.
type systemClock struct{}

// Now returns the current instant.
func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns the wall-clock time source.
func System() systemClock {
	return systemClock{}
}
