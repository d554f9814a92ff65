package main

import (
	"fmt"
	"math"
	"time"
)

// uptimeTracker reports how long the service has been running.
type uptimeTracker struct {
	start time.Time
}

func newUptimeTracker(start time.Time) *uptimeTracker {
	return &uptimeTracker{start: start}
}

// elapsed returns the time since the tracker was created.
func (u *uptimeTracker) elapsed() time.Duration {
	return time.Since(u.start)
}

// seconds returns the elapsed time in seconds rounded to two decimals,
// which is how the health endpoint reports it.
func (u *uptimeTracker) seconds() float64 {
	return math.Round(u.elapsed().Seconds()*100) / 100
}

// formatUptime renders a duration starting at its largest non-zero unit,
// e.g. "2d 3h 4m 5s", "3h 4m 5s", "4m 5s" or "5s". Fractional seconds are
// truncated.
func formatUptime(d time.Duration) string {
	total := int64(d.Seconds())
	if total < 0 {
		total = 0
	}

	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
