package utils

import "strings"

// Slugify converts a title into a lowercase, hyphen-separated URL slug.
// Anything outside [a-z0-9] collapses into a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
