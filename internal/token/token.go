package token

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minNameLength = 3
	maxNameLength = 40
)

// keywords are capitalised page labels that would otherwise pass as names
var keywords = map[string]bool{
	"batter":              true,
	"bowler":              true,
	"extras":              true,
	"total":               true,
	"did not bat":         true,
	"yet to bat":          true,
	"fall of wickets":     true,
	"not out":             true,
	"innings":             true,
	"eco":                 true,
	"player of the match": true,
	"playing xi":          true,
	"bench":               true,
	"squads":              true,
	"powerplays":          true,
	"partnerships":        true,
}

// noiseWords mark timestamps, links and call-to-action text
var noiseWords = map[string]bool{
	"gmt":   true,
	"ist":   true,
	"local": true,
	"time":  true,
	"http":  true,
	"https": true,
	"www":   true,
	"view":  true,
	"click": true,
}

var (
	hyphenDescriptorPattern = regexp.MustCompile(`^[a-z]+-[a-z]+`)
	numericPattern          = regexp.MustCompile(`^\d+(\.\d+)?$`)
	oversPattern            = regexp.MustCompile(`^\d+\.?\d*$`)
	abbreviationPattern     = regexp.MustCompile(`^[A-Z][A-Z0-9a-z\s]{0,14}$`)
)

// IsPlausibleName reports whether s is shaped like a human display name:
// 3 to 40 characters, starting with an uppercase letter, made only of letters,
// spaces, dots, apostrophes and hyphens, and not a page label or noise text.
func IsPlausibleName(s string) bool {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < minNameLength || n > maxNameLength {
		return false
	}
	if keywords[strings.ToLower(s)] {
		return false
	}
	if HasNoise(s) || IsHyphenDescriptor(s) {
		return false
	}

	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return false
	}

	letters := 0
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letters++
		case r == ' ', r == '.', r == '\'', r == '-', r == '’':
		default:
			return false
		}
	}
	return letters >= 2
}

// IsHyphenDescriptor reports whether s starts with a lowercase-hyphen-lowercase
// word such as "left-arm" or "right-handed".
func IsHyphenDescriptor(s string) bool {
	return hyphenDescriptorPattern.MatchString(strings.TrimSpace(s))
}

// HasNoise reports whether s contains timestamp, link or call-to-action text.
// Any ":" or "http" substring counts, but noise words such as "ist" or "gmt"
// only match as whole words, so names like "Kristian" or "Christian" are kept
// where a plain substring test would drop them.
func HasNoise(s string) bool {
	lower := strings.ToLower(s)
	if strings.Contains(lower, ":") || strings.Contains(lower, "http") {
		return true
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if noiseWords[w] {
			return true
		}
	}
	return false
}

// IsNumeric reports whether s is an integer or decimal literal
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// IsStat reports whether s is a numeric stat column, including overs written
// with a trailing dot such as "4."
func IsStat(s string) bool {
	return IsNumeric(s) || oversPattern.MatchString(s)
}

// IsShortAbbreviation reports whether s looks like a short team code line
func IsShortAbbreviation(s string) bool {
	return abbreviationPattern.MatchString(s)
}
