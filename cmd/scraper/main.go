package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/nrl-scraper/internal/app"
	"github.com/riskibarqy/nrl-scraper/internal/config"
	"github.com/riskibarqy/nrl-scraper/internal/platform/logging"
)

type scrapeArgs struct {
	year       int
	comp       int
	startRound int
}

func parseArgs(args []string) (scrapeArgs, error) {
	fs := flag.NewFlagSet("scraper", flag.ContinueOnError)
	year := fs.Int("year", 0, "season year to scrape (required, e.g. 2025)")
	comp := fs.Int("comp", 111, "competition id (default 111 for NRL)")
	startRound := fs.Int("start-round", 1, "round number to start from")

	if err := fs.Parse(args); err != nil {
		return scrapeArgs{}, err
	}
	if *year <= 0 {
		return scrapeArgs{}, fmt.Errorf("--year is required")
	}
	if *startRound <= 0 {
		return scrapeArgs{}, fmt.Errorf("--start-round must be greater than zero")
	}

	return scrapeArgs{year: *year, comp: *comp, startRound: *startRound}, nil
}

func main() {
	// Local development convenience; absent .env files are fine.
	_ = godotenv.Load()

	args, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, args, logger); err != nil {
		logger.Error("scrape run failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, args scrapeArgs, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := app.NewScrapeJob(ctx, cfg, app.ScrapeOptions{
		Season:        args.year,
		CompetitionID: args.comp,
	}, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.InfoContext(ctx, "scrape run starting",
		"year", args.year, "comp", args.comp, "start_round", args.startRound)

	if err := svc.Run(ctx, args.startRound); err != nil {
		return err
	}

	logger.InfoContext(ctx, "scrape run finished")
	return nil
}
