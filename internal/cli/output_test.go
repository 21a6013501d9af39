package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pfrederiksen/cricscore/internal/match"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" csv ", FormatCSV, false},
		{"yaml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteOutput_EmptyRecord(t *testing.T) {
	rec := match.NewRecord("https://www.cricbuzz.com/live-cricket-scores/1/x")

	tests := []struct {
		format OutputFormat
		want   string
	}{
		{FormatText, rec.URL + "\n"},
		{FormatCSV, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteOutput(&buf, rec, tt.format, false); err != nil {
				t.Fatalf("WriteOutput() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteOutput() = %q, want %q", buf.String(), tt.want)
			}
		})
	}

	var buf bytes.Buffer
	if err := WriteOutput(&buf, rec, FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput(json) error = %v", err)
	}
	for _, want := range []string{`"players": []`, `"scorecard": []`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("JSON missing %s:\n%s", want, buf.String())
		}
	}

	if err := WriteOutput(&buf, rec, "xml", false); err == nil {
		t.Error("WriteOutput(xml) expected error")
	}
}

func TestWriteOutput_TextVerbose(t *testing.T) {
	rec := match.NewRecord("https://www.cricbuzz.com/live-cricket-scores/1/x")
	rec.Title = "Nepal vs Oman, 5th Match"
	rec.Info.Winner = "Nepal"
	rec.Info.Umpires = "Chris Brown, Rod Tucker"

	var quiet, verbose bytes.Buffer
	if err := WriteOutput(&quiet, rec, FormatText, false); err != nil {
		t.Fatal(err)
	}
	if err := WriteOutput(&verbose, rec, FormatText, true); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(quiet.String(), "Umpires") {
		t.Errorf("non-verbose output should omit umpires:\n%s", quiet.String())
	}
	for _, want := range []string{"Winner: Nepal", "Umpires: Chris Brown, Rod Tucker", "Source: " + rec.URL} {
		if !strings.Contains(verbose.String(), want) {
			t.Errorf("verbose output missing %q:\n%s", want, verbose.String())
		}
	}
}

func TestWriteSummaries(t *testing.T) {
	summaries := []Summary{
		{ID: "100", Title: "India vs Australia, 1st T20I", Result: "India won by 6 runs"},
		{ID: "200"},
	}

	var buf bytes.Buffer
	if err := WriteSummaries(&buf, summaries, FormatText); err != nil {
		t.Fatalf("WriteSummaries() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("text lines = %d, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "200") || !strings.Contains(lines[1], "-") {
		t.Errorf("missing title should print a dash: %q", lines[1])
	}

	buf.Reset()
	if err := WriteSummaries(&buf, summaries, FormatCSV); err != nil {
		t.Fatalf("WriteSummaries(csv) error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "id,match_title,result,match_url\n") {
		t.Errorf("CSV header = %q", buf.String())
	}
	if !strings.Contains(buf.String(), `100,"India vs Australia, 1st T20I",India won by 6 runs,`) {
		t.Errorf("CSV row = %q", buf.String())
	}
}
