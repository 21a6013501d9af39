package scorecard

import (
	"testing"

	"github.com/pfrederiksen/cricscore/internal/match"
)

func TestParseBowling_EconomyIsLastToken(t *testing.T) {
	ls := []string{"Bowler", "Pat Cummins", "9", "0", "1", "45", "2", "3", "9.00", "5.00"}
	stats := ls[2:]

	got := parseBowling(ls, 0)
	if len(got) != 1 {
		t.Fatalf("parseBowling() = %+v, want one entry", got)
	}

	want := match.Bowling{Bowler: "Pat Cummins", Overs: "9", Maidens: "0", Runs: "1", Wickets: "45", Economy: stats[len(stats)-1]}
	if got[0] != want {
		t.Errorf("entry = %+v, want %+v", got[0], want)
	}
}

func TestParseBowling(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []match.Bowling
	}{
		{
			name:  "five columns",
			lines: []string{"Bowler", "O", "M", "R", "W", "ECO", "Jasprit Bumrah", "4", "1", "20", "2", "5.00"},
			want: []match.Bowling{
				{Bowler: "Jasprit Bumrah", Overs: "4", Maidens: "1", Runs: "20", Wickets: "2", Economy: "5.00"},
			},
		},
		{
			name:  "overs with trailing dot",
			lines: []string{"Bowler", "Arshdeep Singh", "3.", "0", "41", "1", "13.66"},
			want: []match.Bowling{
				{Bowler: "Arshdeep Singh", Overs: "3.", Maidens: "0", Runs: "41", Wickets: "1", Economy: "13.66"},
			},
		},
		{
			name: "short row dropped",
			lines: []string{
				"Bowler",
				"Adam Zampa", "4", "0", "30",
				"Glenn Maxwell", "2", "0", "20", "0", "10.00",
			},
			want: []match.Bowling{
				{Bowler: "Glenn Maxwell", Overs: "2", Maidens: "0", Runs: "20", Wickets: "0", Economy: "10.00"},
			},
		},
		{
			name:  "stops at next batter anchor",
			lines: []string{"Bowler", "Batter", "Travis Head", "1", "2", "3", "4", "5"},
			want:  []match.Bowling{},
		},
		{
			name:  "filler skipped",
			lines: []string{"Bowler", "Kuldeep Yadav", "4", "0", "(2w)", "28", "3", "7.00", "Total"},
			want: []match.Bowling{
				{Bowler: "Kuldeep Yadav", Overs: "4", Maidens: "0", Runs: "28", Wickets: "3", Economy: "7.00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseBowling(tt.lines, 0)
			if len(got) != len(tt.want) {
				t.Fatalf("parseBowling() = %+v, want %+v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
