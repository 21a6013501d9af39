package token

import (
	"testing"

	"github.com/pfrederiksen/cricscore/internal/match"
)

func TestResolveTeam(t *testing.T) {
	table := map[string]string{
		"IND": "India",
		"AUS": "Australia",
		"RCB": "Royal Challengers Bengaluru",
	}

	tests := []struct {
		name  string
		abbr  string
		team1 string
		team2 string
		want  match.Side
	}{
		{"table hit first", "IND", "India", "Australia", match.SideFirst},
		{"table hit second", "AUS", "India", "Australia", match.SideSecond},
		{"lowercase code", "aus", "India", "Australia", match.SideSecond},
		{"table name differs", "RCB", "Chennai Super Kings", "Royal Challengers Bangalore", match.SideUnresolved},
		{"initials", "SL", "Sri Lanka", "New Zealand", match.SideFirst},
		{"prefix", "ENG", "West Indies", "England", match.SideSecond},
		{"unknown code", "XYZ", "India", "Australia", match.SideUnresolved},
		{"ambiguous", "IND", "India", "India A", match.SideUnresolved},
		{"no teams", "IND", "", "", match.SideUnresolved},
		{"empty code", "", "India", "Australia", match.SideUnresolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTeam(tt.abbr, tt.team1, tt.team2, table); got != tt.want {
				t.Errorf("ResolveTeam(%q, %q, %q) = %v, want %v", tt.abbr, tt.team1, tt.team2, got, tt.want)
			}
		})
	}
}
