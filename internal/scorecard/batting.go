package scorecard

import (
	"github.com/pfrederiksen/cricscore/internal/lines"
	"github.com/pfrederiksen/cricscore/internal/match"
	"github.com/pfrederiksen/cricscore/internal/token"
)

const battingStatCount = 5

var (
	battingLabels      = newSet("R", "B", "4s", "6s", "SR", "")
	battingTerminators = newSet("Extras", "Total", "Did not Bat", "Fall of Wickets", BowlerAnchor, "Yet to Bat")
)

type battingState int

const (
	battingAwaitingName battingState = iota
	battingInDismissal
	battingCollectingStats
	battingTerminated
)

// parseBatting reads batting entries from the block after the Batter anchor
// until a terminator line or the end of input.
func parseBatting(ls []string, anchor int) []match.Batting {
	entries := make([]match.Batting, 0)

	c := lines.NewCursor(ls, anchor+1)
	c.SkipWhile(battingLabels.has)

	for {
		line, ok := c.Peek()
		if !ok || battingTerminators.has(line) {
			return entries
		}
		if isEntryName(line) {
			entries = append(entries, scanBattingEntry(c))
			continue
		}
		c.Advance()
	}
}

// scanBattingEntry consumes one batsman starting at the name line. The line after
// the name is taken as the dismissal when it reads like one. Up to five numeric
// stats follow, with filler skipped; a name or terminator ends the entry early.
// An entry with fewer than five stats keeps all stats at "0", and the cursor is
// left wherever scanning stopped.
func scanBattingEntry(c *lines.Cursor) match.Batting {
	entry := match.Batting{
		Dismissal:  match.DefaultDismissal,
		Runs:       "0",
		Balls:      "0",
		Fours:      "0",
		Sixes:      "0",
		StrikeRate: "0",
	}
	stats := make([]string, 0, battingStatCount)

	state := battingAwaitingName
	for state != battingTerminated {
		line, ok := c.Peek()
		if !ok {
			break
		}

		switch state {
		case battingAwaitingName:
			entry.Batsman = token.StripMarkers(line)
			c.Advance()
			state = battingInDismissal

		case battingInDismissal:
			if token.IsDismissal(line) {
				entry.Dismissal = line
				c.Advance()
			}
			state = battingCollectingStats

		case battingCollectingStats:
			switch {
			case token.IsNumeric(line):
				stats = append(stats, line)
				c.Advance()
				if len(stats) == battingStatCount {
					state = battingTerminated
				}
			case isEntryName(line), battingTerminators.has(line):
				state = battingTerminated
			default:
				c.Advance()
			}
		}
	}

	if len(stats) == battingStatCount {
		entry.Runs = stats[0]
		entry.Balls = stats[1]
		entry.Fours = stats[2]
		entry.Sixes = stats[3]
		entry.StrikeRate = stats[4]
	}
	return entry
}
