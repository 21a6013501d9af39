package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pfrederiksen/cricscore/internal/match"
	"golang.org/x/time/rate"
)

const (
	UserAgent = "cricscore/1.0 (github.com/pfrederiksen/cricscore)"
	Timeout   = 30 * time.Second
)

// maxPageSize caps a single response body
const maxPageSize = 16 << 20

// ErrPageTooLarge is returned when a response body exceeds the size cap
var ErrPageTooLarge = errors.New("scraper: page exceeds size limit")

// Fetcher retrieves a rendered match page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// Options configures the HTTP scraper
type Options struct {
	UserAgent string
	Timeout   time.Duration
	// PageDelay is the minimum spacing between two requests. Zero disables it.
	PageDelay time.Duration
}

// Scraper fetches match pages over HTTP
type Scraper struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
	maxBytes  int64
}

// New creates a new Scraper instance
func New(opts Options) *Scraper {
	if opts.UserAgent == "" {
		opts.UserAgent = UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = Timeout
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.PageDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.PageDelay), 1)
	}

	return &Scraper{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent: opts.UserAgent,
		limiter:   limiter,
		maxBytes:  maxPageSize,
	}
}

// Fetch downloads url and parses it into a Page
func (s *Scraper) Fetch(ctx context.Context, url string) (*Page, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting to fetch %s: %w", url, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}
	if int64(len(body)) > s.maxBytes {
		return nil, fmt.Errorf("%s: %w (%d bytes)", url, ErrPageTooLarge, s.maxBytes)
	}

	return NewPage(url, bytes.NewReader(body))
}

// SubPage fetches one sub-page of the match at canonical
func SubPage(ctx context.Context, f Fetcher, segments match.Segments, canonical string, page match.Page) (*Page, error) {
	return f.Fetch(ctx, segments.URL(canonical, page))
}
