package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// cleanPairRegexp matches a decimal "lat, lng" pair and nothing else.
	cleanPairRegexp = regexp.MustCompile(`^-?\d+(\.\d+)?,\s*-?\d+(\.\d+)?$`)
	// loosePairRegexp extracts a numeric pair embedded in a maps link.
	loosePairRegexp = regexp.MustCompile(`([-0-9.]+),\s*([-0-9.]+)`)
)

// Coordinates validates a raw location cell. A clean "lat, lng" pair is
// returned trimmed and unchanged. A maps link (recognised by "@" or
// "coordinate=") gets a looser pair extraction, reformatted as "lat, lng".
// Anything else returns "", which excludes the record from the map.
//
// Latitude/longitude are not range-checked: syntactically valid out-of-range
// pairs pass through, matching the sheet contract as maintained today.
func Coordinates(input string) string {
	if input == "" {
		return ""
	}
	text := strings.TrimSpace(input)
	if cleanPairRegexp.MatchString(text) {
		return text
	}
	if strings.Contains(text, "@") || strings.Contains(text, "coordinate=") {
		if m := loosePairRegexp.FindStringSubmatch(text); m != nil {
			return m[1] + ", " + m[2]
		}
	}
	return ""
}

// LatLng splits a stored "lat, lng" pair into floats. ok is false when either
// half fails to parse; callers skip such records silently.
func LatLng(pair string) (lat, lng float64, ok bool) {
	parts := strings.Split(pair, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}
