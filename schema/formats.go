package schema

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	urlRe   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
)

// KnownFormat reports whether kind names a format validator.
func KnownFormat(kind string) bool {
	switch kind {
	case "email", "url", "date", "uuid":
		return true
	default:
		return false
	}
}

// CheckFormat reports whether v satisfies the named format. Dates must be
// valid calendar dates, not merely digit-shaped.
func CheckFormat(kind, v string) bool {
	switch kind {
	case "email":
		return emailRe.MatchString(v)
	case "url":
		return urlRe.MatchString(v)
	case "date":
		_, err := time.Parse("2006-01-02", v)
		return err == nil
	case "uuid":
		// hyphenated form only
		if len(v) != 36 {
			return false
		}
		_, err := uuid.Parse(v)
		return err == nil
	default:
		return false
	}
}
