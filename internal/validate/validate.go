package validate

import (
	"regexp"
	"strings"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

// Password only checks presence and the bcrypt input ceiling; there is no
// complexity policy on this surface.
func Password(s string) bool {
	return len(s) >= 1 && len(s) <= 72
}

// ProductID accepts the positive integer ids the catalog assigns.
func ProductID(id int64) bool {
	return id > 0
}
