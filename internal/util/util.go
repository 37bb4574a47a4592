// Package util holds small formatting helpers for terminal output.
package util

import (
	"fmt"
	"strconv"
	"time"
)

// Plural renders a count with its noun, e.g. "1 device" or "5 devices".
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return "1 " + singular
	}

	return strconv.Itoa(count) + " " + plural
}

// FormatBytes formats a file size in binary units.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPE"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats an elapsed time. Sub-second durations keep millisecond precision.
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return strconv.FormatInt(duration.Milliseconds(), 10) + "ms"
	}

	duration = duration.Round(time.Second)
	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
}
