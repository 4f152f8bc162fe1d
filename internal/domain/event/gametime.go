package event

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGameTime converts a "MM:SS" game clock reading to whole seconds.
//
// Malformed input (missing colon, non-numeric parts) yields 0 seconds and a
// non-nil error; callers log the error and carry on with the zero value. The
// zero fallback is the canonical time-normalization rule, not a best effort.
func ParseGameTime(raw string) (int, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("game time %q is not in MM:SS form", raw)
	}

	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("game time %q has non-numeric minutes: %w", raw, err)
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("game time %q has non-numeric seconds: %w", raw, err)
	}

	return minutes*60 + seconds, nil
}
