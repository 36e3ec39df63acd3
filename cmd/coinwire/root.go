package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zappabad/coinwire/internal/browser"
	"github.com/zappabad/coinwire/internal/config"
	"github.com/zappabad/coinwire/internal/logging"
	marketservice "github.com/zappabad/coinwire/internal/market/service"
	newsservice "github.com/zappabad/coinwire/internal/news/service"
	"github.com/zappabad/coinwire/internal/session"
	"github.com/zappabad/coinwire/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "coinwire",
	Short:        "Today's crypto news with a live price ticker",
	Long:         "coinwire shows today's crypto news by category in the terminal, under a price ticker refreshed every five minutes.",
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "path to log file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(snapshotCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "coinwire %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// setup loads the config, opens the log file and builds a session from them.
// A session built with refresh false loads once and never re-fetches prices.
func setup(refresh bool) (*session.Session, io.Closer, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logPath := cfg.LogPath()
	if flagLogFile != "" {
		logPath = flagLogFile
	}
	logger, closer, err := logging.Open(logPath, logging.ParseLevel(flagLogLevel))
	if err != nil {
		return nil, nil, err
	}

	sc := cfg.SessionConfig()
	if !refresh {
		sc.RefreshInterval = 0
	}
	newsSvc := newsservice.NewNewsService(cfg.NewsConfig(), logger)
	priceSvc := marketservice.NewPriceService(cfg.PriceConfig(), logger)
	return session.New(sc, newsSvc, priceSvc, logger), closer, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	sess, closer, err := setup(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	slog.Info("starting coinwire", "version", version)
	return tui.Run(cmd.Context(), sess, browser.Open)
}
