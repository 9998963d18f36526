// Package reltime formats timestamps as short relative phrases such as
// "3 hours ago" for activity feeds and tables.
package reltime

import (
	"fmt"
	"time"
)

// Format describes t relative to now using the largest whole unit:
// days, then hours, then minutes. Anything under a minute, and any time
// in the future, is "Just now".
func Format(now, t time.Time) string {
	diff := now.Sub(t)
	minutes := int64(diff / time.Minute)
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return plural(days, "day")
	case hours > 0:
		return plural(hours, "hour")
	case minutes > 0:
		return plural(minutes, "minute")
	default:
		return "Just now"
	}
}

// Since is Format relative to the current time.
func Since(t time.Time) string {
	return Format(time.Now(), t)
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
