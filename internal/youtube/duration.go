package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ZeroDuration is the sentinel the Data API reports for missing content
// details; it formats to "0:00".
const ZeroDuration = "PT0S"

var durationRe = regexp.MustCompile(`PT(\d+H)?(\d+M)?(\d+S)?`)

// FormatDuration converts an ISO 8601 elapsed-time notation ("PT1H2M3S")
// into a display string: "H:MM:SS" when hours are present, "M:SS"
// otherwise. Input with no parseable groups formats to "0:00".
func FormatDuration(iso string) string {
	var hours, minutes, seconds int

	if m := durationRe.FindStringSubmatch(iso); m != nil {
		hours = groupValue(m[1], "H")
		minutes = groupValue(m[2], "M")
		seconds = groupValue(m[3], "S")
	}

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func groupValue(group, unit string) int {
	if group == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSuffix(group, unit))
	if err != nil {
		return 0
	}
	return n
}

// IsShortForm classifies a display duration string as short-form.
//
// The rule operates on the display string, not the underlying seconds:
// a two-field "M:SS" string is short iff the minute field is 0, while a
// three-field "H:MM:SS" string is short iff the hour field is 0. That
// means "0:15:00" counts as short-form even though "15:00" would not.
// This asymmetry is long-standing observed behavior that downstream
// filtering depends on; do not "fix" it here.
func IsShortForm(duration string) bool {
	parts := strings.Split(duration, ":")

	switch len(parts) {
	case 2:
		minutes, err := strconv.Atoi(parts[0])
		if err != nil {
			return false
		}
		return minutes < 1
	case 3:
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return false
		}
		return hours == 0
	}

	// Default to long-form if we can't parse
	return false
}

// TypeLabel returns the display label for a duration's classification.
func TypeLabel(duration string) string {
	if IsShortForm(duration) {
		return "Short"
	}
	return "Long"
}
