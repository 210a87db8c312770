package base64

import "strings"

// GetContentType extracts the media type from a base64 data URI,
// e.g. "data:image/png;base64,..." yields "image/png". It returns
// an empty string when the ";base64," marker is missing.
func GetContentType(uri string) string {
	start := len("data:")
	end := strings.Index(uri, ";base64,")

	if end < start {
		return ""
	}

	return uri[start:end]
}
