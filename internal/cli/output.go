package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jszwec/csvutil"
	"github.com/pfrederiksen/cricscore/internal/match"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatText, FormatJSON, FormatCSV:
		return format, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'csv')", s)
}

// Summary is one stored record in list output
type Summary struct {
	ID     string `json:"id" csv:"id"`
	Title  string `json:"match_title" csv:"match_title"`
	Result string `json:"result" csv:"result"`
	URL    string `json:"match_url" csv:"match_url"`
}

// WriteOutput writes the record in the specified format
func WriteOutput(w io.Writer, rec *match.Record, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rec)
	case FormatText:
		return writeText(w, rec, verbose)
	case FormatCSV:
		return writeCSV(w, rec)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteSummaries writes the list of stored records
func WriteSummaries(w io.Writer, summaries []Summary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summaries)
	case FormatCSV:
		if len(summaries) == 0 {
			return nil
		}
		data, err := csvutil.Marshal(summaries)
		if err != nil {
			return fmt.Errorf("encoding CSV: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatText:
		if len(summaries) == 0 {
			fmt.Fprintln(w, "No stored matches.")
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, s := range summaries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, orDash(s.Title), orDash(s.Result))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText outputs the record as a human-readable scorecard
func writeText(w io.Writer, rec *match.Record, verbose bool) error {
	info := rec.Info

	if rec.Title != "" {
		fmt.Fprintln(w, rec.Title)
		fmt.Fprintln(w, strings.Repeat("=", len([]rune(rec.Title))))
	} else {
		fmt.Fprintln(w, rec.URL)
	}

	for _, team := range [][2]string{{info.Team1Name, info.Team1Score}, {info.Team2Name, info.Team2Score}} {
		if team[0] != "" || team[1] != "" {
			fmt.Fprintf(w, "%s: %s\n", orDash(team[0]), orDash(team[1]))
		}
	}

	facts := [][2]string{
		{"Result", info.Result},
		{"Player of the Match", info.PlayerOfMatch},
		{"Venue", info.Venue},
		{"Date", info.Date},
		{"Toss", info.Toss},
	}
	if verbose {
		facts = append(facts,
			[2]string{"Winner", info.Winner},
			[2]string{"Umpires", info.Umpires},
			[2]string{"Match Referee", info.MatchReferee},
		)
	}
	for _, f := range facts {
		if f[1] != "" {
			fmt.Fprintf(w, "%s: %s\n", f[0], f[1])
		}
	}

	for _, roster := range []match.Roster{rec.Lineups.Team1, rec.Lineups.Team2} {
		if len(roster.Players) == 0 {
			continue
		}
		names := make([]string, 0, len(roster.Players))
		for _, p := range roster.Players {
			if p.Designation != "" {
				names = append(names, fmt.Sprintf("%s (%s)", p.Name, p.Designation))
			} else {
				names = append(names, p.Name)
			}
		}
		fmt.Fprintf(w, "\n%s XI: %s\n", orDash(roster.Name), strings.Join(names, ", "))
	}

	for _, inn := range rec.Innings {
		if err := writeInnings(w, inn); err != nil {
			return err
		}
	}

	if verbose {
		fmt.Fprintf(w, "\nSource: %s\n", rec.URL)
	}
	return nil
}

func writeInnings(w io.Writer, inn match.Innings) error {
	fmt.Fprintf(w, "\n%s", inn.Label)
	if inn.BattingTeam != "" {
		fmt.Fprintf(w, " - %s", inn.BattingTeam)
	}
	if inn.TotalScore != "" {
		fmt.Fprintf(w, " %s (%s Ov)", inn.TotalScore, inn.TotalOvers)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Batter\tDismissal\tR\tB\t4s\t6s\tSR")
	for _, b := range inn.Batting {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.Batsman, b.Dismissal, b.Runs, b.Balls, b.Fours, b.Sixes, b.StrikeRate)
	}
	if len(inn.Bowling) > 0 {
		fmt.Fprintln(tw, "\t\t\t\t\t\t")
		fmt.Fprintln(tw, "Bowler\tO\tM\tR\tW\tECO\t")
		for _, b := range inn.Bowling {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
				b.Bowler, b.Overs, b.Maidens, b.Runs, b.Wickets, b.Economy)
		}
	}
	return tw.Flush()
}

type battingRow struct {
	Innings    string `csv:"innings"`
	Team       string `csv:"batting_team"`
	Batsman    string `csv:"batsman"`
	Dismissal  string `csv:"dismissal"`
	Runs       string `csv:"runs"`
	Balls      string `csv:"balls"`
	Fours      string `csv:"fours"`
	Sixes      string `csv:"sixes"`
	StrikeRate string `csv:"strike_rate"`
}

type bowlingRow struct {
	Innings string `csv:"innings"`
	Team    string `csv:"batting_team"`
	Bowler  string `csv:"bowler"`
	Overs   string `csv:"overs"`
	Maidens string `csv:"maidens"`
	Runs    string `csv:"runs"`
	Wickets string `csv:"wickets"`
	Economy string `csv:"economy"`
}

// writeCSV outputs the batting rows of every innings, then a blank line and the
// bowling rows. A table with no rows is omitted.
func writeCSV(w io.Writer, rec *match.Record) error {
	batting := make([]battingRow, 0)
	bowling := make([]bowlingRow, 0)

	for _, inn := range rec.Innings {
		for _, b := range inn.Batting {
			batting = append(batting, battingRow{
				Innings: inn.Label, Team: inn.BattingTeam,
				Batsman: b.Batsman, Dismissal: b.Dismissal,
				Runs: b.Runs, Balls: b.Balls, Fours: b.Fours, Sixes: b.Sixes, StrikeRate: b.StrikeRate,
			})
		}
		for _, b := range inn.Bowling {
			bowling = append(bowling, bowlingRow{
				Innings: inn.Label, Team: inn.BattingTeam,
				Bowler: b.Bowler, Overs: b.Overs, Maidens: b.Maidens,
				Runs: b.Runs, Wickets: b.Wickets, Economy: b.Economy,
			})
		}
	}

	tables := make([][]byte, 0, 2)
	if len(batting) > 0 {
		data, err := csvutil.Marshal(batting)
		if err != nil {
			return fmt.Errorf("encoding batting CSV: %w", err)
		}
		tables = append(tables, data)
	}
	if len(bowling) > 0 {
		data, err := csvutil.Marshal(bowling)
		if err != nil {
			return fmt.Errorf("encoding bowling CSV: %w", err)
		}
		tables = append(tables, data)
	}

	for i, data := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
