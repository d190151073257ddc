package format

import "time"

// DateLayout is the yyyy-MM-dd HH:mm:ss pattern used by Time.
const DateLayout = "2006-01-02 15:04:05"

// Time renders a nanosecond Unix timestamp in the local timezone.
func Time(nanos int64) string {
	return TimeIn(nanos, time.Local)
}

// TimeIn renders a nanosecond Unix timestamp in loc. A nil loc means time.Local.
// Precision is truncated to milliseconds before formatting.
func TimeIn(nanos int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(nanos / int64(time.Millisecond)).In(loc).Format(DateLayout)
}
