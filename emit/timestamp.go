// emit/timestamp.go

package emit

import "time"

// timestampLayout renders a wall-clock instant with millisecond precision,
// zero-padded: 09:05:07.004.
const timestampLayout = "15:04:05.000"

// Timestamp formats t as HH:MM:SS.mmm in t's location.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// Now returns the current local time formatted as HH:MM:SS.mmm.
func Now() string {
	return Timestamp(time.Now())
}
