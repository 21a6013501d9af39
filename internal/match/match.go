package match

import (
	"errors"
	"strings"
)

// ErrNilRecord is returned when a parser is handed no record to populate.
var ErrNilRecord = errors.New("match: nil record")

// DefaultDismissal is used for batting entries with no dismissal line.
const DefaultDismissal = "not out"

// MaxRosterSize is the number of players kept per team roster.
const MaxRosterSize = 11

// Record is the full structured result for one match
type Record struct {
	URL     string    `json:"match_url"`
	Title   string    `json:"match_title"`
	Info    Info      `json:"match_info"`
	Lineups Lineups   `json:"playing_11"`
	Innings []Innings `json:"scorecard"`
}

// Info holds match-level facts
type Info struct {
	Team1Name     string `json:"team1_name"`
	Team1Score    string `json:"team1_score"`
	Team2Name     string `json:"team2_name"`
	Team2Score    string `json:"team2_score"`
	Venue         string `json:"venue"`
	Date          string `json:"date"`
	Toss          string `json:"toss"`
	Result        string `json:"result"`
	Winner        string `json:"winner"`
	PlayerOfMatch string `json:"player_of_match"`
	Umpires       string `json:"umpires"`
	MatchReferee  string `json:"match_referee"`
}

// Lineups holds the two playing XIs
type Lineups struct {
	Team1 Roster `json:"team1"`
	Team2 Roster `json:"team2"`
}

// Roster is one team's playing XI in document order
type Roster struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// Player is a single roster entry
type Player struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
}

// Innings is one team's batting turn
type Innings struct {
	Label       string    `json:"innings"`
	BattingTeam string    `json:"batting_team"`
	TotalScore  string    `json:"total_score"`
	TotalOvers  string    `json:"total_overs"`
	Batting     []Batting `json:"batting"`
	Bowling     []Bowling `json:"bowling"`
}

// Batting is one batsman's row. Numeric fields keep the page's literal text.
type Batting struct {
	Batsman    string `json:"batsman"`
	Dismissal  string `json:"dismissal"`
	Runs       string `json:"runs"`
	Balls      string `json:"balls"`
	Fours      string `json:"fours"`
	Sixes      string `json:"sixes"`
	StrikeRate string `json:"strike_rate"`
}

// Bowling is one bowler's row
type Bowling struct {
	Bowler  string `json:"bowler"`
	Overs   string `json:"overs"`
	Maidens string `json:"maidens"`
	Runs    string `json:"runs"`
	Wickets string `json:"wickets"`
	Economy string `json:"economy"`
}

// NewRecord creates an empty record for the given match URL
func NewRecord(url string) *Record {
	return &Record{
		URL: url,
		Lineups: Lineups{
			Team1: Roster{Players: make([]Player, 0)},
			Team2: Roster{Players: make([]Player, 0)},
		},
		Innings: make([]Innings, 0),
	}
}

// Side identifies one of the two teams of a match
type Side int

const (
	SideUnresolved Side = iota
	SideFirst
	SideSecond
)

func (s Side) String() string {
	switch s {
	case SideFirst:
		return "team1"
	case SideSecond:
		return "team2"
	default:
		return "unresolved"
	}
}

// SetScore assigns score to the given side if that side has no score yet.
// It reports whether the field was written.
func (i *Info) SetScore(side Side, score string) bool {
	if score == "" {
		return false
	}
	switch side {
	case SideFirst:
		if i.Team1Score == "" {
			i.Team1Score = score
			return true
		}
	case SideSecond:
		if i.Team2Score == "" {
			i.Team2Score = score
			return true
		}
	}
	return false
}

// FillScore assigns score to the first empty score field, team1 before team2.
func (i *Info) FillScore(score string) bool {
	if i.SetScore(SideFirst, score) {
		return true
	}
	return i.SetScore(SideSecond, score)
}

// TeamName returns the known name for side, or "" when unresolved.
func (i *Info) TeamName(side Side) string {
	switch side {
	case SideFirst:
		return i.Team1Name
	case SideSecond:
		return i.Team2Name
	}
	return ""
}

// HasTeams reports whether both team names are known
func (i *Info) HasTeams() bool {
	return strings.TrimSpace(i.Team1Name) != "" && strings.TrimSpace(i.Team2Name) != ""
}
