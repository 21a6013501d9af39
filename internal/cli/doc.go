// Package cli implements the command-line interface for cricscore.
//
// The cli package provides the Cobra-based CLI that extracts a match from its
// Cricbuzz URL (or from saved pages), stores the record, and reports it as text,
// JSON or CSV. The list and show subcommands read records saved by earlier runs.
// It coordinates the config, scraper, extract and storage packages.
package cli
