// Command cardctl manages the database schema and fixture data.
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/tcg-trading-api/internal/config"
	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/repositories"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
)

func main() {
	root := newRootCmd(openFixtures)
	root.SetOut(os.Stdout)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// openFixtures connects to PostgreSQL and builds the fixture service.
func openFixtures(ctx context.Context, configPath string) (fixtures, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, nil, err
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("postgres connection: %w", err)
	}

	// No request transactions outside the HTTP server.
	noTx := repositories.TxGetter(func(context.Context) *sqlx.Tx { return nil })

	svc := services.NewFixtureService(
		repositories.NewFixtureRepository(db),
		repositories.NewSetRepository(db, noTx),
		repositories.NewRarityRepository(db, noTx),
		repositories.NewCardRepository(db, noTx),
		repositories.NewUserRepository(db, noTx),
	)

	closeFn := func() {
		logger.Sync()
		db.Close()
	}
	return svc, closeFn, nil
}
