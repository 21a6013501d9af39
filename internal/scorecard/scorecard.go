package scorecard

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pfrederiksen/cricscore/internal/lines"
	"github.com/pfrederiksen/cricscore/internal/match"
	"github.com/pfrederiksen/cricscore/internal/token"
)

const (
	BatterAnchor = "Batter"
	BowlerAnchor = "Bowler"

	// DefaultHeaderWindow is how many lines above a Batter anchor an innings
	// header may sit and still belong to that innings.
	DefaultHeaderWindow = 25
)

// Options configures the scorecard parser
type Options struct {
	HeaderWindow int
}

// ScoreFiller receives innings totals for match score fields that are still empty
type ScoreFiller interface {
	FillScore(score string) bool
}

// Parser extracts innings from scorecard lines
type Parser struct {
	opts Options
}

// New creates a Parser
func New(opts Options) *Parser {
	if opts.HeaderWindow <= 0 {
		opts.HeaderWindow = DefaultHeaderWindow
	}
	return &Parser{opts: opts}
}

// header is an innings header line and its position
type header struct {
	pos   int
	line  string
	score token.Score
}

// Parse returns one Innings per Batter anchor that yields at least one batting
// entry. Innings header totals are offered to scores in page order.
func (p *Parser) Parse(ls []string, scores ScoreFiller) ([]match.Innings, error) {
	if ls == nil {
		return nil, lines.ErrNilLines
	}
	if scores == nil {
		return nil, match.ErrNilRecord
	}

	headers := findHeaders(ls)
	for _, h := range headers {
		scores.FillScore(h.score.String())
	}

	batters := lines.IndexAll(ls, BatterAnchor)
	bowlers := lines.IndexAll(ls, BowlerAnchor)

	innings := make([]match.Innings, 0, len(batters))
	for n, anchor := range batters {
		inn := match.Innings{
			Label:   fmt.Sprintf("Innings %d", n+1),
			Bowling: make([]match.Bowling, 0),
		}

		if h, ok := p.nearestHeader(headers, anchor); ok {
			inn.BattingTeam = teamFromHeader(h.line)
			inn.TotalScore = h.score.Runs + "/" + h.score.Wickets
			inn.TotalOvers = h.score.Overs
		}

		inn.Batting = parseBatting(ls, anchor)
		if len(inn.Batting) == 0 {
			continue
		}

		if bowler, ok := nextAfter(bowlers, anchor); ok {
			inn.Bowling = parseBowling(ls, bowler)
		}

		innings = append(innings, inn)
	}

	return innings, nil
}

func findHeaders(ls []string) []header {
	headers := make([]header, 0)
	for i, line := range ls {
		if !token.IsInningsHeader(line) {
			continue
		}
		score, _ := token.InningsScore(line)
		headers = append(headers, header{pos: i, line: line, score: score})
	}
	return headers
}

// nearestHeader returns the closest header above anchor within the window
func (p *Parser) nearestHeader(headers []header, anchor int) (header, bool) {
	var found header
	ok := false
	for _, h := range headers {
		if h.pos < anchor && h.pos > anchor-p.opts.HeaderWindow {
			found, ok = h, true
		}
	}
	return found, ok
}

func nextAfter(positions []int, anchor int) (int, bool) {
	for _, pos := range positions {
		if pos > anchor {
			return pos, true
		}
	}
	return 0, false
}

var inningsWord = regexp.MustCompile(`(?i)innings`)

func teamFromHeader(line string) string {
	loc := inningsWord.FindStringIndex(line)
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(line[:loc[0]])
}

// set is a fixed collection of exact line values
type set map[string]bool

func newSet(values ...string) set {
	s := make(set, len(values))
	for _, v := range values {
		s[v] = true
	}
	return s
}

func (s set) has(line string) bool {
	return s[line]
}

func isEntryName(line string) bool {
	return token.IsPlausibleName(token.StripMarkers(line))
}
