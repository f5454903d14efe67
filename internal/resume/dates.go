package resume

import "time"

// dateLayouts are the accepted granularities for stored date strings. The
// model does not require dates to parse; anything unparsable simply renders
// verbatim and never counts as expired.
var dateLayouts = []string{"2006-01", "2006-01-02", "2006"}

// ParseDate parses a stored date string at any accepted granularity.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Expired reports whether the certification's expiry date is set, parses, and
// lies strictly before now. An absent or unparsable expiry never expires.
func (c Certification) Expired(now time.Time) bool {
	if c.ExpiryDate == "" {
		return false
	}
	expiry, ok := ParseDate(c.ExpiryDate)
	if !ok {
		return false
	}
	return expiry.Before(now)
}

// FormatDateRange renders a start/end pair for display, substituting
// "Present" for the end date of an in-progress entry.
func FormatDateRange(start, end string, current bool) string {
	if current {
		return start + " - Present"
	}
	return start + " - " + end
}
