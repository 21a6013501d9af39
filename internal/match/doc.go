// Package match provides the typed record assembled for one cricket match.
//
// A Record is created empty at the start of processing and each parser writes only
// its own subtree: facts parsing fills Info, squad parsing fills Lineups and scorecard
// parsing appends Innings. Score fields follow a first-write-wins policy shared by
// every producer, enforced by the setters on Info.
package match
