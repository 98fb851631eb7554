// Package biztime pins all time handling to UTC. Storage, transport,
// and token timestamps never use the implicit process-local timezone.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}
