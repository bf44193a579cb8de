// Package duration parses durations with day, week, month and year units.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Calendar units. Months and years are approximate.
const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
	Year  = 365 * Day
)

var calendarUnits = map[string]time.Duration{
	"d": Day,
	"w": Week,
	"M": Month, // "m" is minutes
	"y": Year,
}

var calendarPattern = regexp.MustCompile(`(\d+)([ywMd])`)

// Parse extends time.ParseDuration with d, w, M and y. Units may be mixed,
// as in "2w3d" or "1d12h". "0" is zero.
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, fmt.Errorf("empty duration string")
	case "0":
		return 0, nil
	}

	var total time.Duration
	for _, m := range calendarPattern.FindAllStringSubmatch(s, -1) {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q in %q", m[1], s)
		}
		total += time.Duration(n) * calendarUnits[m[2]]
	}

	rest := strings.TrimSpace(calendarPattern.ReplaceAllString(s, ""))
	if rest == "" {
		return total, nil
	}
	d, err := time.ParseDuration(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w (supported units: ns, us, ms, s, m, h, d, w, M, y)", s, err)
	}
	return total + d, nil
}

// CeilDays returns d in whole days, rounded up.
func CeilDays(d time.Duration) int {
	return int((d + Day - 1) / Day)
}
