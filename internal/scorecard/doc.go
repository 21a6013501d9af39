// Package scorecard recovers per-innings batting and bowling tables from the flat
// line dump of a scorecard page.
//
// Innings are located through the page's column-header rows: every line reading
// exactly "Batter" opens a batting block and the next "Bowler" line after it opens
// that innings' bowling block. Innings header lines ("India Innings 186-4 (20 Ov)")
// supply the batting team and totals, and backfill match scores that are still empty.
//
// Each block is read by a small state machine over a lines.Cursor. The batting
// scanner moves through awaiting-name, in-dismissal, collecting-stats and terminated
// states; the bowling scanner through awaiting-name, collecting-stats and terminated.
// Lines that fit no state are skipped as filler.
package scorecard
