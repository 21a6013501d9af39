// Package facts extracts match-level facts from the normalized lines of a match page.
//
// It recovers the two team names from the page title, the per-team scores from short
// team-code lines followed by a score, the result line and winner, the player of the
// match, and the labelled key facts (venue, date, toss, umpires, match referee) from the
// facts sub-page. Every extraction is best-effort: missing input leaves the field empty.
package facts
