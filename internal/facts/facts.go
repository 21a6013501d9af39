package facts

import (
	"regexp"
	"strings"

	"github.com/pfrederiksen/cricscore/internal/lines"
	"github.com/pfrederiksen/cricscore/internal/match"
	"github.com/pfrederiksen/cricscore/internal/token"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxResultLength   = 100
	playerOfMatchSpan = 3
)

// wonByPattern locates the winner separator on the line as written, since
// lowercasing can change byte offsets.
var wonByPattern = regexp.MustCompile(`(?i) won by `)

// Options configures the facts parser
type Options struct {
	// Abbreviations maps short team codes to full team names
	Abbreviations map[string]string
	// TitleSuffixes are stripped from the page title before team names are read
	TitleSuffixes []string
}

// DefaultTitleSuffixes returns the suffixes the live page appends to its heading
func DefaultTitleSuffixes() []string {
	return []string{" - Live Cricket Score", " - Commentary"}
}

// Parser extracts match facts
type Parser struct {
	opts Options
}

// New creates a Parser
func New(opts Options) *Parser {
	if opts.Abbreviations == nil {
		opts.Abbreviations = map[string]string{}
	}
	return &Parser{opts: opts}
}

// Title is a cleaned page heading and the team names read from it
type Title struct {
	Text  string
	Team1 string
	Team2 string
}

// HasTeams reports whether both team names were found
func (t Title) HasTeams() bool {
	return t.Team1 != "" && t.Team2 != ""
}

// ParseTitle cleans a raw page heading and splits "<team> vs <team>, <rest>" into
// title-cased team names. Headings without " vs " yield a Title with no teams.
func (p *Parser) ParseTitle(raw string) Title {
	text := raw
	for _, suffix := range p.opts.TitleSuffixes {
		text = strings.ReplaceAll(text, suffix, "")
	}
	t := Title{Text: strings.TrimSpace(text)}

	lower := strings.ToLower(t.Text)
	if !strings.Contains(lower, " vs ") {
		return t
	}

	head := strings.ToLower(strings.SplitN(t.Text, ",", 2)[0])
	teams := strings.Split(head, " vs ")
	if len(teams) < 2 {
		return t
	}

	caser := cases.Title(language.English)
	t.Team1 = caser.String(strings.TrimSpace(teams[0]))
	t.Team2 = caser.String(strings.TrimSpace(teams[1]))
	return t
}

// ApplyTitle writes the title's team names into info when both were found
func (p *Parser) ApplyTitle(t Title, info *match.Info) {
	if info == nil || !t.HasTeams() {
		return
	}
	info.Team1Name = t.Team1
	info.Team2Name = t.Team2
}

// Parse extracts scores, result and player of the match from the live page lines
func (p *Parser) Parse(ls []string, info *match.Info) error {
	if ls == nil {
		return lines.ErrNilLines
	}
	if info == nil {
		return match.ErrNilRecord
	}

	p.ExtractScores(ls, info)
	ExtractResult(ls, info)
	ExtractPlayerOfMatch(ls, info)
	return nil
}

// ExtractScores pairs short team-code lines with a score on the following line.
// The code is resolved against the known team names; a score for a resolved team
// is written only if that team has none yet, and an unresolved code fills the first
// empty score field, team1 before team2.
func (p *Parser) ExtractScores(ls []string, info *match.Info) {
	for i := 0; i+1 < len(ls); i++ {
		if !token.IsShortAbbreviation(ls[i]) {
			continue
		}
		score, ok := token.ExtractScore(ls[i+1])
		if !ok {
			continue
		}

		side := token.ResolveTeam(ls[i], info.Team1Name, info.Team2Name, p.opts.Abbreviations)
		if side == match.SideUnresolved {
			info.FillScore(score.String())
			continue
		}
		info.SetScore(side, score.String())
	}
}

// ExtractResult records the first line announcing a win, tie or draw. When the
// line reads "<team> won by ...", the team becomes the winner.
func ExtractResult(ls []string, info *match.Info) {
	for _, line := range ls {
		lower := strings.ToLower(line)
		if !isResultLine(lower) || len(line) >= maxResultLength {
			continue
		}

		if info.Result == "" {
			info.Result = strings.TrimSpace(line)
			if loc := wonByPattern.FindStringIndex(line); loc != nil {
				info.Winner = strings.TrimSpace(line[:loc[0]])
			}
		}
		return
	}
}

func isResultLine(lower string) bool {
	return strings.Contains(lower, " won by ") ||
		strings.Contains(lower, " tied") ||
		strings.Contains(lower, "match drawn")
}

// ExtractPlayerOfMatch looks at the three lines after the first "player of the
// match" label and takes the first one that reads as a name. Bowling-style
// descriptors and timestamp or link noise are skipped. Later labels are ignored.
func ExtractPlayerOfMatch(ls []string, info *match.Info) {
	for i, line := range ls {
		if !strings.Contains(strings.ToLower(line), "player of the match") {
			continue
		}

		for j := i + 1; j < len(ls) && j <= i+playerOfMatchSpan; j++ {
			candidate := strings.TrimSpace(ls[j])
			if token.IsHyphenDescriptor(candidate) || token.HasNoise(candidate) {
				continue
			}
			if isPlayerCandidate(candidate) {
				info.PlayerOfMatch = candidate
				return
			}
		}
		return
	}
}

func isPlayerCandidate(s string) bool {
	n := len([]rune(s))
	return n > 3 && n < 40 &&
		token.IsPlausibleName(s) &&
		strings.ToLower(s) != s
}
