// Package extract runs the parsers over the pages of one match and assembles
// the match record.
//
// The live page is required: it supplies the title, team names, scores, result
// and player of the match. The facts, squads and scorecard sub-pages are fetched
// in that order and each fills only its own part of the record. A sub-page that
// cannot be fetched is logged and its part left empty.
package extract
