package normalize

import (
	"regexp"
	"strings"
)

// driveIDRegexp captures the file identifier inside a Drive share link.
// Real ids are 25+ chars of [-_a-zA-Z0-9]; everything shorter in the URL
// (host labels, path segments, query keys) stays below that length.
var driveIDRegexp = regexp.MustCompile(`[-\w]{25,}`)

const driveThumbnailSize = "w500"

// ImageURL rewrites Google Drive share links to the direct thumbnail form the
// browser can embed. Non-Drive URLs pass through unchanged, as does a Drive
// link whose id cannot be extracted (better the original link than a
// fabricated broken thumbnail). Empty input stays empty.
func ImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "drive.google.com") {
		return raw
	}
	id := driveIDRegexp.FindString(raw)
	if id == "" {
		return raw
	}
	return "https://drive.google.com/thumbnail?id=" + id + "&sz=" + driveThumbnailSize
}
