package format

import (
	"fmt"
	"math"
	"time"
)

// FormatExecutionDuration formats a wall-clock duration for status lines:
// microseconds below a millisecond, milliseconds below a second, and
// time.Duration's own form above.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}

// FormatAge renders a moon age in days as whole days and hours, e.g. "7d 09h".
func FormatAge(days float64) string {
	if math.IsNaN(days) || days < 0 {
		days = 0
	}
	hours := int(math.Round(days * 24))
	return fmt.Sprintf("%dd %02dh", hours/24, hours%24)
}

// FormatPercent renders a fraction in [0, 1] as a percentage with one decimal.
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// FormatSignedDays renders a day offset with an explicit sign, e.g. "+3d".
func FormatSignedDays(days int) string {
	return fmt.Sprintf("%+dd", days)
}
