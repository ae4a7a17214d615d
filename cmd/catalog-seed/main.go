// Command catalog-seed writes the built-in pet catalog into PostgreSQL so the
// API can be started with POSTGRES_DSN pointing at it.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	catpostgres "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/persistence/postgres"
	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
	"github.com/Apurer/pet-name-generator/internal/platform/migrations"
	platformpostgres "github.com/Apurer/pet-name-generator/internal/platform/postgres"
)

type options struct {
	DSN     string        `long:"dsn" env:"POSTGRES_DSN" description:"PostgreSQL connection string" required:"true"`
	Timeout time.Duration `long:"timeout" env:"SEED_TIMEOUT" default:"30s" description:"Overall deadline for migrate and seed"`
	Verify  bool          `long:"verify" description:"Reload the catalog after seeding and compare it with the built-in one"`
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	if err := run(ctx, opts, logger); err != nil {
		logger.Error("catalog seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("catalog seed completed")
}

func parseOptions(args []string) (options, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Seed the pet catalog into PostgreSQL"
	if _, err := parser.ParseArgs(args); err != nil {
		return options{}, err
	}
	if opts.Timeout <= 0 {
		return options{}, fmt.Errorf("timeout must be positive")
	}
	return opts, nil
}

func run(ctx context.Context, opts options, logger *slog.Logger) error {
	db, err := platformpostgres.Connect(ctx, opts.DSN)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	catalog := domain.Default()
	source := catpostgres.NewSource(db)
	if err := source.Seed(ctx, catalog); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	logger.Info("catalog tables upserted",
		slog.Int("name_tables", len(catalog.NameTypes())),
		slog.Int("fact_tables", len(catalog.FactTypes())))

	if !opts.Verify {
		return nil
	}
	loaded, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if got, want := len(loaded.AllFacts()), len(catalog.AllFacts()); got != want {
		return fmt.Errorf("verify: loaded %d facts, want %d", got, want)
	}
	return nil
}
