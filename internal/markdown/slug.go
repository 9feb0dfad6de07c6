package markdown

import (
	"strings"

	slug "github.com/goliatone/go-slug"
)

// Slugify derives a section id from its title: lowercase, runs of
// non-alphanumerics collapsed to single dashes, dashes trimmed. Duplicate ids
// are not detected; section lookup resolves to the first match.
func Slugify(title string) string {
	if normalized, err := slug.Normalize(title); err == nil && normalized != "" {
		return normalized
	}
	return fallbackSlug(title)
}

func fallbackSlug(title string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(sb.String(), "-")
}
