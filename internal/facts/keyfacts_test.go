package facts

import (
	"errors"
	"testing"

	"github.com/pfrederiksen/cricscore/internal/lines"
	"github.com/pfrederiksen/cricscore/internal/match"
)

func TestParseKeyFacts(t *testing.T) {
	ls := []string{
		"Match Info",
		"Venue",
		"Wankhede Stadium, Mumbai",
		"DATE",
		"Sunday, March 15, 2026",
		"Toss",
		"India won the toss and opted to bowl",
		"Umpires",
		"Nitin Menon, Richard Illingworth",
		"Match Referee",
		"Javagal Srinath",
		"Venue",
		"Mumbai",
		"Toss",
	}

	var info match.Info
	if err := ParseKeyFacts(ls, &info); err != nil {
		t.Fatalf("ParseKeyFacts() error = %v", err)
	}

	want := match.Info{
		Venue:        "Mumbai",
		Date:         "Sunday, March 15, 2026",
		Toss:         "India won the toss and opted to bowl",
		Umpires:      "Nitin Menon, Richard Illingworth",
		MatchReferee: "Javagal Srinath",
	}
	if info != want {
		t.Errorf("ParseKeyFacts() = %+v, want %+v", info, want)
	}
}

func TestParseKeyFacts_Preconditions(t *testing.T) {
	if err := ParseKeyFacts(nil, &match.Info{}); !errors.Is(err, lines.ErrNilLines) {
		t.Errorf("error = %v, want ErrNilLines", err)
	}
	if err := ParseKeyFacts([]string{"Venue"}, nil); !errors.Is(err, match.ErrNilRecord) {
		t.Errorf("error = %v, want ErrNilRecord", err)
	}
}
