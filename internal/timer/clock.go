// Package timer provides the clocks and scoped timer sets that drive the
// hero animations.
package timer

import "time"

// Clock schedules a callback to run once after a delay.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Handle
}

// Handle cancels a scheduled callback. Stop reports whether the call
// prevented the callback from running.
type Handle interface {
	Stop() bool
}
