package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pfrederiksen/cricscore/internal/config"
	"github.com/pfrederiksen/cricscore/internal/extract"
	"github.com/pfrederiksen/cricscore/internal/logger"
	"github.com/pfrederiksen/cricscore/internal/match"
	"github.com/pfrederiksen/cricscore/internal/scraper"
	"github.com/pfrederiksen/cricscore/internal/storage"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagURL     string
	flagFromDir string
	flagDataDir string
	flagFormat  string
	flagConfig  string
	flagTimeout time.Duration
	flagDelay   time.Duration
	flagNoSave   bool
	flagVerbose  bool
	flagLogLevel string
	flagField    string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cricscore",
		Short: "Extract cricket match data from Cricbuzz match pages",
		Long: `A CLI tool to extract a cricket match from its Cricbuzz pages.
Reads the live, facts, squads and scorecard pages of a match and reports
team scores, the result, the playing XIs and every innings' batting and bowling.`,
		RunE:          runExtract,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define flags
	cmd.Flags().StringVar(&flagURL, "url", "", "Match URL on the live scores page (required)")
	cmd.Flags().StringVar(&flagFromDir, "from-dir", "", "Read saved pages (live.html, facts.html, squads.html, scorecard.html) from this directory")
	cmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", config.DefaultTimeout, "HTTP timeout per page")
	cmd.Flags().DurationVar(&flagDelay, "delay", config.DefaultPageDelay, "Minimum delay between page requests")
	cmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store the extracted record")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", storage.DefaultDataDir, "Data directory for match records")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text, json or csv")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Minimum log level: debug, info, warn or error")

	cmd.MarkFlagRequired("url") // nolint:errcheck

	cmd.AddCommand(newListCmd(), newShowCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored match records",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored match record",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	cmd.Flags().StringVar(&flagField, "field", "", "Print one value by JSON path (e.g. match_info.venue, scorecard.0.batting.#)")
	return cmd
}

// setupLogging routes logs to stderr at the --log-level threshold. Verbose runs
// log at DEBUG whatever the level flag says.
func setupLogging(cmd *cobra.Command) error {
	level, err := logger.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
	return nil
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("timeout") {
		cfg.HTTP.Timeout = flagTimeout
	}
	if cmd.Flags().Changed("delay") {
		cfg.HTTP.PageDelay = flagDelay
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runExtract is the main command logic
func runExtract(cmd *cobra.Command, args []string) error {
	format, err := ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	if err := setupLogging(cmd); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var fetcher scraper.Fetcher
	if flagFromDir != "" {
		logger.Info("Reading saved pages", logger.Fields{"dir": flagFromDir})
		fetcher = scraper.NewDirFetcher(flagFromDir, cfg.Pages)
	} else {
		fetcher = scraper.New(cfg.ScraperOptions())
	}

	// Metrics cover this run only
	metrics := logger.DefaultMetrics()
	metrics.Reset()
	ex := extract.New(fetcher, cfg, logger.Default(), metrics)

	start := time.Now()
	rec, err := ex.Extract(cmd.Context(), flagURL)
	logger.RecordTiming("run.extract", time.Since(start))
	if err != nil {
		return fmt.Errorf("extracting match: %w", err)
	}

	if !flagNoSave {
		store, err := storage.New(flagDataDir)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}
		path, err := store.Save(rec)
		if err != nil {
			logger.Error("Saving record failed", logger.Fields{"dir": store.Dir()}, err)
			return fmt.Errorf("saving record: %w", err)
		}
		logger.IncrCounter("records.saved")
		logger.Info("Saved record", logger.Fields{"path": path})
	}

	if err := WriteOutput(cmd.OutOrStdout(), rec, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Debug("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	if err := setupLogging(cmd); err != nil {
		return err
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	logger.Debug("Listing records", logger.Fields{"dir": store.Dir()})

	ids, err := store.List()
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	summaries := make([]Summary, 0, len(ids))
	for _, id := range ids {
		rec, err := store.Load(id)
		if err != nil {
			logger.Warn("Skipping unreadable record", logger.Fields{"id": id, "err": err.Error()})
			continue
		}
		summaries = append(summaries, Summary{
			ID:     id,
			Title:  rec.Title,
			Result: rec.Info.Result,
			URL:    rec.URL,
		})
	}

	return WriteSummaries(cmd.OutOrStdout(), summaries, format)
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	if err := setupLogging(cmd); err != nil {
		return err
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	rec, err := store.Load(args[0])
	if err != nil {
		return err
	}

	if flagField == "" {
		return WriteOutput(cmd.OutOrStdout(), rec, format, flagVerbose)
	}

	value, err := lookupField(rec, flagField)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// lookupField reads one value from the record's JSON form by gjson path
func lookupField(rec *match.Record, path string) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encoding record: %w", err)
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return "", fmt.Errorf("field not found: %s", path)
	}
	return result.String(), nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
