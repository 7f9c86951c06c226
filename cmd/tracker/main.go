package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"QuoteTracker/internal/collector"
	"QuoteTracker/internal/config"
	"QuoteTracker/internal/notifier"
	"QuoteTracker/internal/scheduler"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath     string
		symbols     string
		from        string
		window      int
		provider    string
		concurrency int
		format      string
		cronSpec    string
		verbose     bool
	)

	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Summarize recent price history for a list of tickers",
		Long: `tracker fetches daily quotes for each ticker since --from and prints one line per ticker:
start,ticker,$last,change%,$min,$max,$sma`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath == "" {
				cfgPath = "configs/config.yaml"
				if v := os.Getenv("CONFIG_PATH"); v != "" {
					cfgPath = v
				}
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("symbols") {
				cfg.Symbols = config.SplitSymbols(symbols)
			}
			if flags.Changed("from") {
				cfg.From = from
			}
			if flags.Changed("window") {
				cfg.Window = &window
			}
			if flags.Changed("provider") {
				cfg.DataSource.Provider = provider
			}
			if flags.Changed("concurrency") {
				cfg.Concurrency = concurrency
			}
			if flags.Changed("format") {
				cfg.Output.Format = format
			}
			if flags.Changed("cron") {
				cfg.Schedule.Cron = cronSpec
			}
			if verbose {
				cfg.Log.Verbose = true
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := rootCmd.Flags()
	f.StringVar(&cfgPath, "config", "", "Configuration file path (default configs/config.yaml or $CONFIG_PATH)")
	f.StringVarP(&symbols, "symbols", "s", "AAPL,MSFT,UBER,GOOG", "Comma-separated ticker symbols")
	f.StringVarP(&from, "from", "f", "", `Start of the window, "YYYY-MM-DD hh:mm:ss" in UTC`)
	f.IntVarP(&window, "window", "w", 30, "Simple moving average window width")
	f.StringVar(&provider, "provider", "yahoo", "Data source: yahoo, financego, vstrader or mock")
	f.IntVarP(&concurrency, "concurrency", "c", 1, "Maximum tickers fetched at once")
	f.StringVar(&format, "format", notifier.FormatCSV, "Output format: csv or table")
	f.StringVar(&cronSpec, "cron", "", "Repeat on this cron schedule (seconds field first) until interrupted")
	f.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tracker %s\n", version)
		},
	}
}

func run(parent context.Context, cfg *config.Config) error {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if !cfg.Log.Verbose {
		log.SetOutput(io.Discard)
	}

	start, err := cfg.Start()
	if err != nil {
		return err
	}

	// Init fetcher
	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "vstrader":
		fetcher = collector.NewVsTraderFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "financego":
		fetcher = collector.NewFinanceGoFetcher()
	case "mock":
		fetcher = &collector.StaticFetcher{Price: 100}
	default:
		fetcher = collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher, cfg.SMAWindow(), cfg.Concurrency)

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, cfg.Symbols, start, cfg.Output.Format, os.Stdout, os.Stderr)
	if cfg.TelegramEnabled() {
		sched.Notifier = notifier.NewTelegramNotifier("", cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		log.Println("[INFO] Telegram delivery enabled")
	}

	if _, err := sched.RunOnce(ctx); err != nil {
		return err
	}
	if cfg.Schedule.Cron == "" {
		return nil
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		return err
	}
	sched.StartCron()
	log.Println("[INFO] tracker is running. Press Ctrl+C to stop.")

	<-ctx.Done()
	log.Println("[INFO] shutdown signal received, stopping...")
	sched.Stop()
	return nil
}
