package facts

import (
	"strings"

	"github.com/pfrederiksen/cricscore/internal/lines"
	"github.com/pfrederiksen/cricscore/internal/match"
)

// ParseKeyFacts reads labelled facts from the facts sub-page. A line equal to one
// of the labels (case-insensitive) assigns the following line to its field.
// A label that repeats overwrites the earlier value.
func ParseKeyFacts(ls []string, info *match.Info) error {
	if ls == nil {
		return lines.ErrNilLines
	}
	if info == nil {
		return match.ErrNilRecord
	}

	fields := map[string]*string{
		"venue":         &info.Venue,
		"date":          &info.Date,
		"toss":          &info.Toss,
		"umpires":       &info.Umpires,
		"match referee": &info.MatchReferee,
	}

	for i := 0; i+1 < len(ls); i++ {
		if field, ok := fields[strings.ToLower(strings.TrimSpace(ls[i]))]; ok {
			*field = ls[i+1]
		}
	}
	return nil
}
