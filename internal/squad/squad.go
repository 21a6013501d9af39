// Package squad reads the two playing XIs from the squads sub-page document.
package squad

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/cricscore/internal/match"
	"github.com/pfrederiksen/cricscore/internal/token"
)

// ErrNilDocument is returned when no document tree is supplied
var ErrNilDocument = errors.New("squad: nil document")

const minRawNameLength = 3

// Selectors locate team sections, their headers and player profile links
type Selectors struct {
	Section    string `yaml:"section"`
	Header     string `yaml:"header"`
	PlayerLink string `yaml:"player_link"`
}

// DefaultSelectors returns the selectors for the squads page layout
func DefaultSelectors() Selectors {
	return Selectors{
		Section:    "div.cb-col-50.cb-col",
		Header:     "span.cb-font-20, h2, a.cb-lnk-wht, div.cb-font-16",
		PlayerLink: "a[href*='/profiles/']",
	}
}

// Parser extracts lineups
type Parser struct {
	sel Selectors
}

// New creates a Parser
func New(sel Selectors) *Parser {
	return &Parser{sel: sel}
}

// Parse fills lineups from doc. team1 and team2 are the names already known from
// the match facts; they take precedence over the section headers on the page.
func (p *Parser) Parse(doc *goquery.Document, team1, team2 string, lineups *match.Lineups) error {
	if doc == nil {
		return ErrNilDocument
	}
	if lineups == nil {
		return match.ErrNilRecord
	}

	rosters := p.sections(doc)
	if len(rosters) < 2 {
		if all := p.fallback(doc, team1, team2); all != nil {
			rosters = all
		}
	}

	assign(rosters, team1, team2, lineups)
	return nil
}

// sections reads one roster per team section, dropping sections with no players
func (p *Parser) sections(doc *goquery.Document) []match.Roster {
	rosters := make([]match.Roster, 0, 2)

	doc.Find(p.sel.Section).Each(func(_ int, section *goquery.Selection) {
		roster := match.Roster{
			Name:    strings.TrimSpace(section.Find(p.sel.Header).First().Text()),
			Players: collectPlayers(section.Find(p.sel.PlayerLink)),
		}
		if len(roster.Players) > match.MaxRosterSize {
			roster.Players = roster.Players[:match.MaxRosterSize]
		}
		if len(roster.Players) > 0 {
			rosters = append(rosters, roster)
		}
	})

	return rosters
}

// fallback splits every profile link on the page positionally: the first eleven
// players form team1 and the next eleven team2. It assumes two teams of eleven
// appear in document order without interleaving.
func (p *Parser) fallback(doc *goquery.Document, team1, team2 string) []match.Roster {
	players := collectPlayers(doc.Find(p.sel.PlayerLink))
	if len(players) < match.MaxRosterSize {
		return nil
	}

	second := make([]match.Player, 0)
	if len(players) >= 2*match.MaxRosterSize {
		second = players[match.MaxRosterSize : 2*match.MaxRosterSize]
	}

	return []match.Roster{
		{Name: team1, Players: players[:match.MaxRosterSize]},
		{Name: team2, Players: second},
	}
}

// collectPlayers turns profile links into unique, cleaned player entries
func collectPlayers(links *goquery.Selection) []match.Player {
	players := make([]match.Player, 0)
	seen := make(map[string]bool)

	links.Each(func(_ int, link *goquery.Selection) {
		raw := strings.TrimSpace(link.Text())
		if len([]rune(raw)) < minRawNameLength {
			return
		}

		name := token.StripMarkers(token.CleanName(raw))
		if !token.IsPlausibleName(name) || seen[name] {
			return
		}
		seen[name] = true
		players = append(players, match.Player{
			Name:        name,
			Designation: token.ExtractDesignation(raw),
		})
	})

	return players
}

func assign(rosters []match.Roster, team1, team2 string, lineups *match.Lineups) {
	switch {
	case len(rosters) >= 2:
		lineups.Team1 = withName(rosters[0], team1)
		lineups.Team2 = withName(rosters[1], team2)
	case len(rosters) == 1:
		lineups.Team1 = withName(rosters[0], team1)
	}
}

func withName(r match.Roster, known string) match.Roster {
	if known != "" {
		r.Name = known
	}
	return r
}
