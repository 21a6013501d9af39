package token

import "testing"

func TestIsPlausibleName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Virat Kohli", true},
		{"Rohit Sharma", true},
		{"Quinton de Kock", true},
		{"R. Ashwin", true},
		{"Shai Hope-Smith", true},
		{"Christian Jongeneel", true},
		{"Rohit Sharma (c)", false},
		{"186", false},
		{"14:00", false},
		{"GMT 14:00", false},
		{"Starts 10 AM IST", false},
		{"http://example.com", false},
		{"View full commentary", false},
		{"Click here", false},
		{"left-arm orthodox", false},
		{"c Smith b Starc", false},
		{"lbw b Cummins", false},
		{"Ro", false},
		{"Extras", false},
		{"Total", false},
		{"Batter", false},
		{"Did not Bat", false},
		{"Fall of Wickets", false},
		{"ECO", false},
		{"4s", false},
		{"A Very Long Display Name That Keeps Going On", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsPlausibleName(tt.input); got != tt.want {
				t.Errorf("IsPlausibleName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsHyphenDescriptor(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"left-arm orthodox", true},
		{"right-arm fast", true},
		{"Left-arm orthodox", false},
		{"Shai Hope-Smith", false},
		{"leftarm", false},
	}
	for _, tt := range tests {
		if got := IsHyphenDescriptor(tt.input); got != tt.want {
			t.Errorf("IsHyphenDescriptor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHasNoise(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"GMT 14:00", true},
		{"7:30 PM", true},
		{"Match starts 19.30 IST", true},
		{"https://www.cricbuzz.com", true},
		{"View all", true},
		{"Local time", true},
		{"Kristian Clarke", false},
		{"Virat Kohli", false},
		{"Christian Jongwe", false},
		{"Match starts 19.30 IST (India)", true},
		{"Times in gmt", true},
	}
	for _, tt := range tests {
		if got := HasNoise(tt.input); got != tt.want {
			t.Errorf("HasNoise(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		stat  bool
	}{
		{"45", true, true},
		{"150.00", true, true},
		{"0", true, true},
		{"4.", false, true},
		{"-3", false, false},
		{"4s", false, false},
		{"", false, false},
		{"1.2.3", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsNumeric(tt.input); got != tt.want {
				t.Errorf("IsNumeric(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := IsStat(tt.input); got != tt.stat {
				t.Errorf("IsStat(%q) = %v, want %v", tt.input, got, tt.stat)
			}
		})
	}
}

func TestIsShortAbbreviation(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"IND", true},
		{"AUS", true},
		{"Super Kings", true},
		{"ind", false},
		{"India won by 5 wickets", false},
		{"186/4", false},
		{"IND-W", false},
	}
	for _, tt := range tests {
		if got := IsShortAbbreviation(tt.input); got != tt.want {
			t.Errorf("IsShortAbbreviation(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
