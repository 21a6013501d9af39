package match

import (
	"crypto/sha1"
	"fmt"
	"regexp"
	"strings"
)

// Page names one of the sub-pages of a match
type Page string

const (
	PageLive      Page = "live"
	PageFacts     Page = "facts"
	PageSquads    Page = "squads"
	PageScorecard Page = "scorecard"
)

// Segments holds the path segment that identifies each sub-page in a match URL.
// Sub-page URLs are derived from the canonical live URL by substituting Live.
type Segments struct {
	Live      string `yaml:"live"`
	Facts     string `yaml:"facts"`
	Squads    string `yaml:"squads"`
	Scorecard string `yaml:"scorecard"`
}

// DefaultSegments returns the segments used by the Cricbuzz URL scheme
func DefaultSegments() Segments {
	return Segments{
		Live:      "live-cricket-scores",
		Facts:     "cricket-match-facts",
		Squads:    "cricket-match-squads",
		Scorecard: "live-cricket-scorecard",
	}
}

// Segment returns the path segment for page
func (s Segments) Segment(page Page) string {
	switch page {
	case PageFacts:
		return s.Facts
	case PageSquads:
		return s.Squads
	case PageScorecard:
		return s.Scorecard
	default:
		return s.Live
	}
}

// URL derives the address of page from the canonical match URL.
// A URL without the live segment is returned unchanged.
func (s Segments) URL(canonical string, page Page) string {
	if page == PageLive || s.Live == "" {
		return canonical
	}
	return strings.Replace(canonical, s.Live, s.Segment(page), 1)
}

var matchIDPattern = regexp.MustCompile(`/(\d{3,})(?:/|$)`)

// RecordID returns a stable identifier for a match URL: the numeric match id
// when the URL carries one, otherwise a SHA1 prefix of the URL.
func RecordID(url string) string {
	if m := matchIDPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	h := sha1.New()
	h.Write([]byte(strings.TrimSpace(url)))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
