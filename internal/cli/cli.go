package cli

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/templepages/internal/config"
	"github.com/pfrederiksen/templepages/internal/fetch"
	"github.com/pfrederiksen/templepages/internal/ics"
	"github.com/pfrederiksen/templepages/internal/logger"
	"github.com/pfrederiksen/templepages/internal/panchang"
	"github.com/pfrederiksen/templepages/internal/server"
	"github.com/pfrederiksen/templepages/internal/service"
	"github.com/pfrederiksen/templepages/internal/store"
)

var (
	flagConfig  string
	flagFormat  string
	flagRefresh bool
	flagVerbose bool
	flagMonth   string
	flagAddr    string
)

// NewRootCmd creates the root command and its subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "templepages",
		Short: "Extract and serve structured content from the temple website",
		Long: `templepages scrapes the temple's public pages into typed content
records, caches them, and serves them from cache with stale fallback when the
site is unreachable.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config (default: CONFIG_PATH or ./local.yaml)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	fetchCmd := &cobra.Command{
		Use:       "fetch <category>",
		Short:     "Fetch one content category through the cache",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"home", "events", "bookstore", "donation", "admissions", "contact", "classes", "calendar"},
		RunE:      runFetch,
	}
	fetchCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	fetchCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Force a fetch attempt even if the cache is fresh")

	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "List curated calendar events for a month",
		RunE:  runCalendar,
	}
	calendarCmd.Flags().StringVar(&flagMonth, "month", "", "Month as YYYY-MM (default: current month)")
	calendarCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")

	icsCmd := &cobra.Command{
		Use:   "ics",
		Short: "Export a month of curated events as iCalendar",
		RunE:  runICS,
	}
	icsCmd.Flags().StringVar(&flagMonth, "month", "", "Month as YYYY-MM (default: current month)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON content API",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default: from config)")

	root.AddCommand(fetchCmd, calendarCmd, icsCmd, serveCmd)
	return root
}

// newService assembles the orchestrator from config.
func newService() (*service.Service, *config.Config, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	var kv store.KV
	switch cfg.Store.Backend {
	case "sqlite":
		kv, err = store.NewSQLiteStore(cfg.Store.SQLitePath)
	default:
		kv, err = store.NewFileStore(cfg.Store.DataDir)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("initializing store: %w", err)
	}

	return service.New(cfg, fetch.NewHTTPClient(), kv), cfg, nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(flagFormat)
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	svc, _, err := newService()
	if err != nil {
		return err
	}
	return fetchCategory(cmd, svc, args[0], format, flagRefresh)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	year, month, err := parseMonth(flagMonth)
	if err != nil {
		return err
	}

	src := panchang.NewSource(time.Now())
	events := src.EventsForMonth(year, month)
	return writeCalendar(cmd.OutOrStdout(), year, month, events, strings.ToLower(flagFormat))
}

func runICS(cmd *cobra.Command, args []string) error {
	year, month, err := parseMonth(flagMonth)
	if err != nil {
		return err
	}

	src := panchang.NewSource(time.Now())
	events := src.EventsForMonth(year, month)
	fmt.Fprint(cmd.OutOrStdout(), ics.Generate(events, time.Now()))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}

	addr := flagAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	logger.Info("serving content API", logger.Fields{"addr": addr})
	return http.ListenAndServe(addr, server.New(svc))
}

// parseMonth parses a YYYY-MM flag, defaulting to the current month.
func parseMonth(raw string) (int, time.Month, error) {
	if raw == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", raw)
	}
	return t.Year(), t.Month(), nil
}
