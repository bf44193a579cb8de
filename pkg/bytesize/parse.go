// Package bytesize parses human-friendly byte sizes such as "10MB".
package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binary units, 1024-based.
const (
	B  int64 = 1
	KB       = B << 10
	MB       = KB << 10
	GB       = MB << 10
	TB       = GB << 10
)

// suffixes is ordered longest first so "MB" is not read as "B".
var suffixes = []struct {
	unit       string
	multiplier int64
}{
	{"TB", TB}, {"GB", GB}, {"MB", MB}, {"KB", KB}, {"B", B},
}

// Parse parses a size like "512KB", "10MB" or "1.5GB" (case-insensitive)
// into bytes.
func Parse(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	for _, sfx := range suffixes {
		if !strings.HasSuffix(s, sfx.unit) {
			continue
		}
		num := strings.TrimSpace(strings.TrimSuffix(s, sfx.unit))
		if num == "" {
			return 0, fmt.Errorf("invalid size %q: missing numeric value", s)
		}
		value, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid size value %q in %q: %w", num, s, err)
		}
		if value < 0 {
			return 0, fmt.Errorf("invalid size %q: negative value not allowed", s)
		}
		result := value * float64(sfx.multiplier)
		if result > math.MaxInt64 {
			return 0, fmt.Errorf("size %q is too large", s)
		}
		return int64(result), nil
	}

	return 0, fmt.Errorf("invalid size %q: missing unit (supported: B, KB, MB, GB, TB)", s)
}

// CeilMB returns n in whole megabytes, rounded up.
func CeilMB(n int64) int {
	return int((n + MB - 1) / MB)
}
