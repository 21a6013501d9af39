package scorecard

import (
	"github.com/pfrederiksen/cricscore/internal/lines"
	"github.com/pfrederiksen/cricscore/internal/match"
	"github.com/pfrederiksen/cricscore/internal/token"
)

const (
	bowlingMinStats = 5
	bowlingMaxStats = 8
)

var (
	bowlingLabels      = newSet("O", "M", "R", "W", "NB", "WD", "ECO", "")
	bowlingTerminators = newSet("Extras", "Total", BatterAnchor, "Fall of Wickets", "Yet to Bat")
)

type bowlingState int

const (
	bowlingAwaitingName bowlingState = iota
	bowlingCollectingStats
	bowlingTerminated
)

// parseBowling reads bowling entries from the block after the Bowler anchor.
// A name whose row holds fewer than five stats is dropped and scanning resumes
// on the line after that name.
func parseBowling(ls []string, anchor int) []match.Bowling {
	entries := make([]match.Bowling, 0)

	c := lines.NewCursor(ls, anchor+1)
	c.SkipWhile(bowlingLabels.has)

	for {
		line, ok := c.Peek()
		if !ok || bowlingTerminators.has(line) {
			return entries
		}
		if !isEntryName(line) {
			c.Advance()
			continue
		}

		start := c.Pos()
		if entry, ok := scanBowlingEntry(c); ok {
			entries = append(entries, entry)
			continue
		}
		c.Seek(start + 1)
	}
}

// scanBowlingEntry consumes one bowler starting at the name line and collects up
// to eight stat tokens. The first four map to overs, maidens, runs and wickets and
// the last collected token is the economy, so optional no-ball and wide columns
// in between are tolerated.
func scanBowlingEntry(c *lines.Cursor) (match.Bowling, bool) {
	var entry match.Bowling
	stats := make([]string, 0, bowlingMaxStats)

	state := bowlingAwaitingName
	for state != bowlingTerminated {
		line, ok := c.Peek()
		if !ok {
			break
		}

		switch state {
		case bowlingAwaitingName:
			entry.Bowler = token.StripMarkers(line)
			c.Advance()
			state = bowlingCollectingStats

		case bowlingCollectingStats:
			switch {
			case token.IsStat(line):
				stats = append(stats, line)
				c.Advance()
				if len(stats) == bowlingMaxStats {
					state = bowlingTerminated
				}
			case isEntryName(line), bowlingTerminators.has(line):
				state = bowlingTerminated
			default:
				c.Advance()
			}
		}
	}

	if len(stats) < bowlingMinStats {
		return match.Bowling{}, false
	}

	entry.Overs = stats[0]
	entry.Maidens = stats[1]
	entry.Runs = stats[2]
	entry.Wickets = stats[3]
	entry.Economy = stats[len(stats)-1]
	return entry, true
}
