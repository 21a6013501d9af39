package token

import (
	"strings"
	"unicode"

	"github.com/pfrederiksen/cricscore/internal/match"
)

// ResolveTeam decides which of the two known teams the short code abbr denotes.
// A code listed in table is compared against the team names by its full name;
// other codes match a team they equal, whose initials they are, or whose name
// they prefix. A code matching both teams or neither is unresolved.
func ResolveTeam(abbr, team1, team2 string, table map[string]string) match.Side {
	code := strings.ToUpper(strings.TrimSpace(abbr))
	if code == "" {
		return match.SideUnresolved
	}

	first := denotes(code, team1, table)
	second := denotes(code, team2, table)

	switch {
	case first && !second:
		return match.SideFirst
	case second && !first:
		return match.SideSecond
	}
	return match.SideUnresolved
}

func denotes(code, team string, table map[string]string) bool {
	team = strings.TrimSpace(team)
	if team == "" {
		return false
	}

	if full, ok := lookup(table, code); ok {
		return strings.EqualFold(full, team) ||
			containsFold(team, full) ||
			containsFold(full, team)
	}

	upper := strings.ToUpper(team)
	if code == upper || code == initials(team) {
		return true
	}
	return len(code) >= 3 && strings.HasPrefix(strings.ReplaceAll(upper, " ", ""), strings.ReplaceAll(code, " ", ""))
}

func lookup(table map[string]string, code string) (string, bool) {
	if full, ok := table[code]; ok {
		return full, true
	}
	for k, v := range table {
		if strings.EqualFold(k, code) {
			return v, true
		}
	}
	return "", false
}

func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		for _, r := range w {
			if unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
			}
			break
		}
	}
	return b.String()
}

func containsFold(s, sub string) bool {
	return sub != "" && strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
