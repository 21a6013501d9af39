package token

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	scorePattern        = regexp.MustCompile(`(\d+)[/-](\d+)(?:\s*\(\s*(\d+(?:\.\d+)?)\s*(?:Ovs?|Overs)?\s*\))?`)
	inningsScorePattern = regexp.MustCompile(`(\d+)[/-](\d+)\s*\(\s*(\d+(?:\.\d+)?)`)
)

// Score is a "runs/wickets (overs)" triple as text
type Score struct {
	Runs    string
	Wickets string
	Overs   string
}

// String formats the score as "186/4 (20.0 Ov)", or "186/4" without overs
func (s Score) String() string {
	if s.Overs == "" {
		return s.Runs + "/" + s.Wickets
	}
	return fmt.Sprintf("%s/%s (%s Ov)", s.Runs, s.Wickets, s.Overs)
}

// ExtractScore finds a score in text. Dates such as "12-03-2024" are rejected:
// the wickets part may not be followed by another separator.
func ExtractScore(text string) (Score, bool) {
	for _, loc := range scorePattern.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > 0 && isScoreJoiner(rune(text[loc[0]-1])) {
			continue
		}
		if loc[5] < len(text) && isScoreJoiner(rune(text[loc[5]])) {
			continue
		}
		s := Score{
			Runs:    text[loc[2]:loc[3]],
			Wickets: text[loc[4]:loc[5]],
		}
		if loc[6] >= 0 {
			s.Overs = text[loc[6]:loc[7]]
		}
		return s, true
	}
	return Score{}, false
}

func isScoreJoiner(r rune) bool {
	return r == '/' || r == '-' || unicode.IsDigit(r)
}

// InningsScore extracts the "runs/wickets (overs" triple of an innings header
func InningsScore(line string) (Score, bool) {
	m := inningsScorePattern.FindStringSubmatch(line)
	if m == nil {
		return Score{}, false
	}
	return Score{Runs: m[1], Wickets: m[2], Overs: m[3]}, true
}

// IsInningsHeader reports whether line names an innings and carries its score
func IsInningsHeader(line string) bool {
	return strings.Contains(strings.ToLower(line), "innings") && inningsScorePattern.MatchString(line)
}
