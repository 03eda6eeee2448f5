package seasonal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthNames = map[string]time.Month{
	// English
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "jun": time.June, "jul": time.July,
	"aug": time.August, "sep": time.September, "oct": time.October,
	"nov": time.November, "dec": time.December,
	// French
	"janvier": time.January, "février": time.February, "fevrier": time.February,
	"mars": time.March, "avril": time.April, "mai": time.May,
	"juin": time.June, "juillet": time.July, "août": time.August, "aout": time.August,
	"septembre": time.September, "octobre": time.October, "novembre": time.November,
	"décembre": time.December, "decembre": time.December,
}

// ParseMonth resolves a month key from a seasonal document. It accepts
// ordinals 1 to 12 and English or French month names, case-insensitively.
func ParseMonth(key string) (time.Month, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return 0, fmt.Errorf("empty month key")
	}
	if n, err := strconv.Atoi(k); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %d out of range", n)
		}
		return time.Month(n), nil
	}
	if m, ok := monthNames[k]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown month: %q", key)
}
