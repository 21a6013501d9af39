// Package scraper provides the page provider for match pages.
//
// A Fetcher returns a Page for a URL. The HTTP Scraper downloads pages with a
// fixed User-Agent and waits out a configurable delay between requests, and
// DirFetcher serves pages saved to disk so a match can be parsed offline.
//
// A Page keeps the parsed document for selector queries and renders its visible
// text the way a browser lays it out: block elements start new lines, scripts,
// styles and the document head are skipped.
package scraper
