package backend

import (
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ValidHandle reports whether s has the shape of a channel handle: lowercase
// ASCII letters and digits in groups joined by single hyphens.
func ValidHandle(s string) bool {
	return slug.IsSlug(s) && !strings.Contains(s, "_") && !strings.Contains(s, "--")
}

// ValidPageName reports whether s can name a meta page.
func ValidPageName(s string) bool {
	return slug.IsSlug(s)
}

// ParseUUID reads a canonical, hyphenated UUID as used in page URLs.
func ParseUUID(s string) (uuid.UUID, bool) {
	if len(s) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
