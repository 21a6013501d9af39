package token

import (
	"regexp"
	"strings"
)

const (
	DesignationCaptain       = "Captain"
	DesignationWicketKeeper  = "Wicket Keeper"
	DesignationCaptainKeeper = "Captain & Wicket Keeper"
)

var (
	parenPattern      = regexp.MustCompile(`\(([^)]*)\)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ExtractDesignation returns the role marked on a raw name token: "(c)", "(captain)"
// or a trailing "*" mark the captain, "(wk)", "(wicketkeeper)" or "†" the keeper.
// It returns "" when the token carries no marker.
func ExtractDesignation(raw string) string {
	captain := strings.Contains(raw, "*")
	keeper := strings.Contains(raw, "†")

	for _, m := range parenPattern.FindAllStringSubmatch(raw, -1) {
		inner := strings.ToLower(m[1])
		if strings.Contains(inner, "keeper") {
			keeper = true
		}
		for _, w := range strings.FieldsFunc(inner, func(r rune) bool {
			return r == ' ' || r == '&' || r == ',' || r == '/' || r == '+'
		}) {
			switch w {
			case "c", "capt", "captain":
				captain = true
			case "wk", "wicketkeeper":
				keeper = true
			}
		}
	}

	switch {
	case captain && keeper:
		return DesignationCaptainKeeper
	case captain:
		return DesignationCaptain
	case keeper:
		return DesignationWicketKeeper
	}
	return ""
}

// StripMarkers removes designation markers from a name
func StripMarkers(name string) string {
	name = parenPattern.ReplaceAllString(name, " ")
	name = strings.NewReplacer("*", " ", "†", " ").Replace(name)
	return collapse(name)
}

// CleanName normalises a raw display token: non-breaking spaces, runs of
// whitespace and trailing separators are removed.
func CleanName(raw string) string {
	raw = strings.ReplaceAll(raw, "\u00a0", " ")
	return strings.TrimSpace(strings.TrimRight(collapse(raw), ",;|"))
}

func collapse(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

var dismissalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^not out$`),
	regexp.MustCompile(`^c\s*&\s*b\s+\S`),
	regexp.MustCompile(`^c\s+.+\s+b\s+\S`),
	regexp.MustCompile(`^b\s+\S`),
	regexp.MustCompile(`^lbw\b`),
	regexp.MustCompile(`^run out\b`),
	regexp.MustCompile(`^st\s+.+\s+b\s+\S`),
	regexp.MustCompile(`^hit wicket\b`),
	regexp.MustCompile(`^retired (hurt|out)\b`),
}

// IsDismissal reports whether line is a dismissal description: caught, bowled,
// leg before, run out, stumped, hit wicket, retired, or "not out".
func IsDismissal(line string) bool {
	line = strings.TrimSpace(line)
	for _, p := range dismissalPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
