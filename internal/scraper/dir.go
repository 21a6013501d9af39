package scraper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/cricscore/internal/match"
)

// DirFetcher serves match pages saved as live.html, facts.html, squads.html
// and scorecard.html in a directory. The page is chosen by the sub-page
// segment found in the requested URL.
type DirFetcher struct {
	dir      string
	segments match.Segments
}

// NewDirFetcher creates a fetcher reading from dir
func NewDirFetcher(dir string, segments match.Segments) *DirFetcher {
	return &DirFetcher{dir: dir, segments: segments}
}

// Fetch opens the saved file for the page url refers to
func (f *DirFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(f.dir, string(f.pageFor(url))+".html")
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening saved page: %w", err)
	}
	defer file.Close() // nolint:errcheck

	return NewPage(url, file)
}

func (f *DirFetcher) pageFor(url string) match.Page {
	for _, page := range []match.Page{match.PageScorecard, match.PageSquads, match.PageFacts} {
		if seg := f.segments.Segment(page); seg != "" && strings.Contains(url, seg) {
			return page
		}
	}
	return match.PageLive
}
