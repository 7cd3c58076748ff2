package invoice

import (
	"time"

	"dinepos/internal/pkg/errs"
)

// timestampLayouts are the accepted ISO-8601 forms, tried in order: with an
// explicit offset or trailing Z, with fractional seconds, and without any
// zone indicator (interpreted as UTC).
var timestampLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// ParseTimestamp parses an ISO-8601 invoice timestamp. A trailing "Z" zone
// indicator is treated as the +00:00 offset, and a timestamp without any zone
// is interpreted as UTC. Malformed input yields a validation error.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause("timestamp", lastErr)
}
