package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pfrederiksen/cricscore/internal/match"
)

func sampleRecord(url string) *match.Record {
	rec := match.NewRecord(url)
	rec.Title = "India vs Australia, 1st T20I"
	rec.Info.Team1Name = "India"
	rec.Info.Team2Name = "Australia"
	rec.Info.Team1Score = "186/4 (20 Ov)"
	rec.Lineups.Team1 = match.Roster{
		Name:    "India",
		Players: []match.Player{{Name: "Rohit Sharma", Designation: "Captain"}},
	}
	rec.Innings = []match.Innings{{
		Label:       "Innings 1",
		BattingTeam: "India",
		TotalScore:  "186-4",
		TotalOvers:  "20",
		Batting: []match.Batting{{
			Batsman: "Rohit Sharma", Dismissal: "c Smith b Starc",
			Runs: "45", Balls: "30", Fours: "5", Sixes: "2", StrikeRate: "150.00",
		}},
		Bowling: []match.Bowling{},
	}}
	return rec
}

func TestSaveLoad(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rec := sampleRecord("https://www.cricbuzz.com/live-cricket-scores/12345/ind-vs-aus-1st-t20i")

	path, err := s.Save(rec)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if filepath.Base(path) != "match_12345.json" {
		t.Errorf("Save() path = %q, want match_12345.json", path)
	}

	got, err := s.Load("12345")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.URL != rec.URL || got.Title != rec.Title {
		t.Errorf("Load() = %q/%q, want %q/%q", got.URL, got.Title, rec.URL, rec.Title)
	}
	if got.Info.Team1Score != "186/4 (20 Ov)" {
		t.Errorf("Team1Score = %q", got.Info.Team1Score)
	}
	if len(got.Lineups.Team1.Players) != 1 || got.Lineups.Team1.Players[0].Designation != "Captain" {
		t.Errorf("Lineups.Team1 = %+v", got.Lineups.Team1)
	}
	if len(got.Innings) != 1 || got.Innings[0].Batting[0].StrikeRate != "150.00" {
		t.Errorf("Innings = %+v", got.Innings)
	}
}

func TestSave_JSONKeys(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	path, err := s.Save(sampleRecord("https://www.cricbuzz.com/live-cricket-scores/777/x"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}

	for _, key := range []string{`"match_url"`, `"match_title"`, `"match_info"`, `"playing_11"`, `"scorecard"`, `"innings"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("saved JSON missing key %s", key)
		}
	}
}

func TestSave_Replaces(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	url := "https://www.cricbuzz.com/live-cricket-scores/12345/x"
	rec := sampleRecord(url)
	if _, err := s.Save(rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rec.Info.Result = "India won by 6 runs"
	if _, err := s.Save(rec); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := s.Load("12345")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Info.Result != "India won by 6 runs" {
		t.Errorf("Result = %q, want the second save", got.Info.Result)
	}

	ids, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("List() = %v, want one record", ids)
	}
}

func TestSave_Nil(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := s.Save(nil); !errors.Is(err, match.ErrNilRecord) {
		t.Errorf("Save(nil) error = %v, want ErrNilRecord", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = s.Load("99999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "match_1.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load("1"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want parse error", err)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, url := range []string{
		"https://www.cricbuzz.com/live-cricket-scores/300/c",
		"https://www.cricbuzz.com/live-cricket-scores/100/a",
	} {
		if _, err := s.Save(sampleRecord(url)); err != nil {
			t.Fatalf("Save(%s) error = %v", url, err)
		}
	}
	// Unrelated files are ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ids, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if strings.Join(ids, ",") != "100,300" {
		t.Errorf("List() = %v, want [100 300]", ids)
	}
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", s.Dir(), dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("data directory not created: %v", err)
	}
}

func TestLoad_InvalidID(t *testing.T) {
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// "x/../../match_x" would resolve to this file
	outside := filepath.Join(dir, "match_x.json")
	if err := os.WriteFile(outside, []byte(`{"url":"https://example.com"}`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"parent directory", "../x"},
		{"escapes data dir", "x/../../match_x"},
		{"nested path", "a/b"},
		{"backslash", `..\x`},
		{"dot dot", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := s.Load(tt.id)
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("Load(%q) error = %v, want ErrInvalidID", tt.id, err)
			}
			if rec != nil {
				t.Errorf("Load(%q) = %+v, want nil", tt.id, rec)
			}
		})
	}
}
