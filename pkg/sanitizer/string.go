package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reSlugSeparators = regexp.MustCompile(`[\s_]+`)
	reMultiDash      = regexp.MustCompile(`-{2,}`)
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// TrimAndNormalizePtr keeps nil as nil and turns blank optional values into nil.
func TrimAndNormalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := TrimAndNormalize(*s)
	if v == "" {
		return nil
	}
	return &v
}

func NormalizeSlug(slug string) string {
	s := strings.ToLower(strings.TrimSpace(slug))
	s = reSlugSeparators.ReplaceAllString(s, "-")
	s = reMultiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeInitials(initials string) string {
	return strings.ToUpper(strings.Join(strings.Fields(initials), ""))
}

// TrimPtr trims free text without touching inner line breaks. Blank becomes nil.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
