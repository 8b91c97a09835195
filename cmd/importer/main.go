package main

import (
	"context"
	"flag"
	"os"

	"github.com/mkarimi/customer-ledger/internal/config"
	"github.com/mkarimi/customer-ledger/internal/exchange"
	"github.com/mkarimi/customer-ledger/internal/migrations"
	"github.com/mkarimi/customer-ledger/internal/model"
	"github.com/mkarimi/customer-ledger/internal/repository"
	"github.com/mkarimi/customer-ledger/pkg/db"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// importer loads a CSV file straight into the ledger database, bypassing
// the web UI. Handy for seeding and for bulk backfills.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	envPath := flag.String("env", "", "optional .env file")
	filePath := flag.String("file", "", "CSV file to import")
	flag.Parse()

	if *filePath == "" {
		log.Fatal().Msg("usage: importer --file=<path.csv> [--env=<path>]")
	}

	if err := config.Load(*envPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	cfg := config.Get()

	dbConf := db.Config{
		Driver:   cfg.DBDriver,
		Path:     cfg.DBPath,
		User:     cfg.PostgresUser,
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		Password: cfg.PostgresPassword,
		Database: cfg.PostgresDatabase,
	}

	if err := migrations.Run(dbConf); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	database, err := db.CreateReadWrite(dbConf, dbConf, false)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", *filePath).Msg("Failed to open CSV file")
	}
	defer f.Close()

	ex := exchange.NewExchange(
		repository.NewCustomerRepository(database),
		repository.NewTransactionRepository(database),
		database,
	)

	count, err := ex.Import(context.Background(), model.AdminAuth{}, f)
	if err != nil {
		log.Fatal().Err(err).Msg("Import failed")
	}

	log.Info().Int("rows", count).Str("file", *filePath).Msg("Import finished")
}
