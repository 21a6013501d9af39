package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/cricscore/internal/config"
	"github.com/pfrederiksen/cricscore/internal/facts"
	"github.com/pfrederiksen/cricscore/internal/logger"
	"github.com/pfrederiksen/cricscore/internal/match"
	"github.com/pfrederiksen/cricscore/internal/scorecard"
	"github.com/pfrederiksen/cricscore/internal/scraper"
	"github.com/pfrederiksen/cricscore/internal/squad"
)

// ErrEmptyURL is returned when no match URL is given
var ErrEmptyURL = errors.New("extract: empty match URL")

// Extractor builds match records from fetched pages
type Extractor struct {
	fetcher   scraper.Fetcher
	segments  match.Segments
	facts     *facts.Parser
	squads    *squad.Parser
	scorecard *scorecard.Parser
	log       *logger.Logger
	metrics   *logger.Metrics
}

// New creates an Extractor. A nil log or metrics uses the package defaults.
func New(fetcher scraper.Fetcher, cfg *config.Config, log *logger.Logger, metrics *logger.Metrics) *Extractor {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Default()
	}
	if metrics == nil {
		metrics = logger.DefaultMetrics()
	}

	return &Extractor{
		fetcher:   fetcher,
		segments:  cfg.Pages,
		facts:     facts.New(cfg.FactsOptions()),
		squads:    squad.New(cfg.Squad),
		scorecard: scorecard.New(cfg.ScorecardOptions()),
		log:       log,
		metrics:   metrics,
	}
}

// Extract fetches every page of the match at url and returns the assembled record.
// Only a failure to fetch the live page, or a canceled context, is returned as an error.
func (e *Extractor) Extract(ctx context.Context, url string) (*match.Record, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}

	rec := match.NewRecord(url)

	live, err := e.fetch(ctx, rec.URL, match.PageLive)
	if err != nil {
		e.log.Error("Fetching live page failed", logger.Fields{"url": rec.URL}, err)
		return nil, fmt.Errorf("fetching live page: %w", err)
	}
	if err := e.parseLive(live, rec); err != nil {
		return nil, err
	}

	steps := []struct {
		page  match.Page
		parse func(*scraper.Page, *match.Record) error
	}{
		{match.PageFacts, e.parseFacts},
		{match.PageSquads, e.parseSquads},
		{match.PageScorecard, e.parseScorecard},
	}

	for _, step := range steps {
		page, err := e.fetch(ctx, rec.URL, step.page)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("extracting %s: %w", rec.URL, ctxErr)
			}
			e.log.Warn("Skipping sub-page", logger.Fields{
				"page": string(step.page),
				"url":  e.segments.URL(rec.URL, step.page),
				"err":  err.Error(),
			})
			continue
		}
		if err := step.parse(page, rec); err != nil {
			return nil, fmt.Errorf("parsing %s page: %w", step.page, err)
		}
	}

	return rec, nil
}

// fetch retrieves one page of the match and records its timing
func (e *Extractor) fetch(ctx context.Context, canonical string, page match.Page) (*scraper.Page, error) {
	url := e.segments.URL(canonical, page)
	e.log.Debug("Fetching page", logger.Fields{"page": string(page), "url": url})

	start := time.Now()
	p, err := scraper.SubPage(ctx, e.fetcher, e.segments, canonical, page)
	e.metrics.RecordTiming("fetch."+string(page), time.Since(start))
	if err != nil {
		return nil, err
	}

	e.metrics.IncrCounter("pages.fetched")
	e.metrics.SetGauge("page.lines."+string(page), float64(len(p.Lines())))
	return p, nil
}

func (e *Extractor) parseLive(page *scraper.Page, rec *match.Record) error {
	if raw, ok := page.Title(); ok {
		title := e.facts.ParseTitle(raw)
		rec.Title = title.Text
		e.facts.ApplyTitle(title, &rec.Info)
	} else {
		e.log.Warn("Live page has no title", logger.Fields{"url": page.URL})
	}

	if err := e.facts.Parse(page.Lines(), &rec.Info); err != nil {
		return fmt.Errorf("parsing live page: %w", err)
	}
	if !rec.Info.HasTeams() {
		e.log.Warn("Team names not found", logger.Fields{
			"url":   page.URL,
			"team1": rec.Info.Team1Name,
			"team2": rec.Info.Team2Name,
		})
	}

	e.log.Info("facts.parsed", logger.Fields{
		"team1":  rec.Info.Team1Name,
		"team2":  rec.Info.Team2Name,
		"result": rec.Info.Result,
	})
	return nil
}

func (e *Extractor) parseFacts(page *scraper.Page, rec *match.Record) error {
	if err := facts.ParseKeyFacts(page.Lines(), &rec.Info); err != nil {
		return err
	}

	e.log.Info("keyfacts.parsed", logger.Fields{
		"venue": rec.Info.Venue,
		"date":  rec.Info.Date,
	})
	return nil
}

func (e *Extractor) parseSquads(page *scraper.Page, rec *match.Record) error {
	if err := e.squads.Parse(page.Doc, rec.Info.TeamName(match.SideFirst), rec.Info.TeamName(match.SideSecond), &rec.Lineups); err != nil {
		return err
	}

	e.log.Info("squads.parsed", logger.Fields{
		"team1_players": len(rec.Lineups.Team1.Players),
		"team2_players": len(rec.Lineups.Team2.Players),
	})
	return nil
}

func (e *Extractor) parseScorecard(page *scraper.Page, rec *match.Record) error {
	innings, err := e.scorecard.Parse(page.Lines(), &rec.Info)
	if err != nil {
		return err
	}
	rec.Innings = innings

	batting, bowling := 0, 0
	for _, inn := range innings {
		batting += len(inn.Batting)
		bowling += len(inn.Bowling)
	}
	e.metrics.AddCounter("innings.parsed", int64(len(innings)))
	e.metrics.AddCounter("batting.entries", int64(batting))
	e.metrics.AddCounter("bowling.entries", int64(bowling))

	e.log.Info("scorecard.parsed", logger.Fields{
		"innings": len(innings),
		"batting": batting,
		"bowling": bowling,
	})
	return nil
}
