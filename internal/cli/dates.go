package cli

import (
	"strings"
	"time"

	apperrors "github.com/agbru/lunaris/internal/errors"
)

// dateLayouts are tried in order. Layouts without a zone are interpreted in
// the configured location.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses a user supplied instant. An empty string, "now" and
// "today" all mean now. The result is expressed in loc.
func ParseDate(s string, loc *time.Location, now time.Time) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "now", "today":
		return now.In(loc), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("date", "cannot parse %q (use YYYY-MM-DD, \"YYYY-MM-DD HH:MM\", RFC 3339 or now)", s)
}
