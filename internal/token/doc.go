// Package token classifies the individual lines and tokens of a rendered match page.
//
// The predicates here decide whether a line looks like a player name, a numeric stat,
// a dismissal description or page noise. They are total: every input yields an answer
// and nothing panics. The score helpers recognise "runs/wickets (overs)" text and the
// abbreviation helpers map short team codes like "IND" onto the two known team names.
package token
