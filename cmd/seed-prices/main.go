// Command seed-prices loads market prices from a CSV file.
//
// Usage:
//
//	seed-prices --file=prices.csv [--dry-run]
//
// The header must name commodity, market, state, min_price, max_price,
// modal_price and date (YYYY-MM-DD); unit is optional. Existing rows for the
// same commodity, market and date are replaced.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/krishisathi/backend/internal/adapter/postgres"
	marketrepo "github.com/krishisathi/backend/internal/adapter/postgres/market"
	"github.com/krishisathi/backend/internal/app"
	"github.com/krishisathi/backend/internal/config"
	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/service/market"
)

func main() {
	file := flag.String("file", "", "path to the prices CSV file")
	dryRun := flag.Bool("dry-run", false, "parse and validate without writing")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: seed-prices --file=prices.csv [--dry-run]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open %s: %v", *file, err)
	}
	defer f.Close()

	rows, err := market.ParseCSV(f)
	if err != nil {
		reportAndExit(logger, err)
	}
	logger.Info("prices parsed", slog.Int("rows", len(rows)))
	if *dryRun {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := market.NewService(logger, marketrepo.New(pool))
	n, err := svc.Import(ctx, rows)
	if err != nil {
		reportAndExit(logger, err)
	}
	fmt.Printf("Imported %d price rows.\n", n)
}

func reportAndExit(logger *slog.Logger, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", fe.Field, fe.Message)
		}
		os.Exit(1)
	}
	logger.Error("import prices", slog.String("error", err.Error()))
	os.Exit(1)
}
