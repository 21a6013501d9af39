// Package config loads the tuning inputs the parsers read: the team abbreviation
// table, title suffixes, sub-page URL segments, squad selectors, the innings header
// window and HTTP settings for the page provider.
//
// A YAML file is decoded over the built-in defaults, so a file only needs the keys
// it changes. Abbreviations from the file are added to the default table.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/cricscore/internal/facts"
	"github.com/pfrederiksen/cricscore/internal/match"
	"github.com/pfrederiksen/cricscore/internal/scorecard"
	"github.com/pfrederiksen/cricscore/internal/scraper"
	"github.com/pfrederiksen/cricscore/internal/squad"
	"gopkg.in/yaml.v3"
)

const (
	DefaultUserAgent = scraper.UserAgent
	DefaultTimeout   = scraper.Timeout
	DefaultPageDelay = 2 * time.Second
)

// Config holds all configuration
type Config struct {
	Abbreviations map[string]string `yaml:"abbreviations"`
	TitleSuffixes []string          `yaml:"title_suffixes"`
	Pages         match.Segments    `yaml:"pages"`
	Squad         squad.Selectors   `yaml:"squad"`
	HeaderWindow  int               `yaml:"header_window"`
	HTTP          HTTP              `yaml:"http"`
}

// HTTP configures the page provider
type HTTP struct {
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	PageDelay time.Duration `yaml:"page_delay"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Abbreviations: DefaultAbbreviations(),
		TitleSuffixes: facts.DefaultTitleSuffixes(),
		Pages:         match.DefaultSegments(),
		Squad:         squad.DefaultSelectors(),
		HeaderWindow:  scorecard.DefaultHeaderWindow,
		HTTP: HTTP{
			UserAgent: DefaultUserAgent,
			Timeout:   DefaultTimeout,
			PageDelay: DefaultPageDelay,
		},
	}
}

// DefaultAbbreviations returns the short codes used on score lines
func DefaultAbbreviations() map[string]string {
	return map[string]string{
		"IND":  "India",
		"AUS":  "Australia",
		"ENG":  "England",
		"PAK":  "Pakistan",
		"SA":   "South Africa",
		"RSA":  "South Africa",
		"NZ":   "New Zealand",
		"SL":   "Sri Lanka",
		"BAN":  "Bangladesh",
		"AFG":  "Afghanistan",
		"WI":   "West Indies",
		"ZIM":  "Zimbabwe",
		"IRE":  "Ireland",
		"NED":  "Netherlands",
		"SCO":  "Scotland",
		"NEP":  "Nepal",
		"UAE":  "United Arab Emirates",
		"USA":  "United States Of America",
		"CSK":  "Chennai Super Kings",
		"MI":   "Mumbai Indians",
		"RCB":  "Royal Challengers Bengaluru",
		"KKR":  "Kolkata Knight Riders",
		"SRH":  "Sunrisers Hyderabad",
		"RR":   "Rajasthan Royals",
		"DC":   "Delhi Capitals",
		"PBKS": "Punjab Kings",
		"LSG":  "Lucknow Super Giants",
		"GT":   "Gujarat Titans",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Abbreviations = normalizeCodes(cfg.Abbreviations)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every value the parsers depend on is usable
func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.Timeout < 0 {
		errs = append(errs, fmt.Errorf("http.timeout must not be negative"))
	}
	if c.HTTP.PageDelay < 0 {
		errs = append(errs, fmt.Errorf("http.page_delay must not be negative"))
	}
	if c.HeaderWindow <= 0 {
		errs = append(errs, fmt.Errorf("header_window must be positive"))
	}
	if c.Pages.Live == "" || c.Pages.Facts == "" || c.Pages.Squads == "" || c.Pages.Scorecard == "" {
		errs = append(errs, fmt.Errorf("pages: every sub-page segment must be set"))
	}
	if c.Squad.Section == "" || c.Squad.Header == "" || c.Squad.PlayerLink == "" {
		errs = append(errs, fmt.Errorf("squad: every selector must be set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// FactsOptions returns the options for the facts parser
func (c *Config) FactsOptions() facts.Options {
	return facts.Options{
		Abbreviations: c.Abbreviations,
		TitleSuffixes: c.TitleSuffixes,
	}
}

// ScorecardOptions returns the options for the scorecard parser
func (c *Config) ScorecardOptions() scorecard.Options {
	return scorecard.Options{HeaderWindow: c.HeaderWindow}
}

// ScraperOptions returns the options for the HTTP page provider
func (c *Config) ScraperOptions() scraper.Options {
	return scraper.Options{
		UserAgent: c.HTTP.UserAgent,
		Timeout:   c.HTTP.Timeout,
		PageDelay: c.HTTP.PageDelay,
	}
}

func normalizeCodes(table map[string]string) map[string]string {
	out := make(map[string]string, len(table))
	for code, name := range table {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			out[code] = strings.TrimSpace(name)
		}
	}
	return out
}
