// Command migrate applies the database schema and loads the default admin
// account and sample menu.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"coffeeshop/pkg/account"
	accountpg "coffeeshop/pkg/account/postgres"
	catalogpg "coffeeshop/pkg/catalog/postgres"
	"coffeeshop/pkg/config"
	"coffeeshop/pkg/db"
	"coffeeshop/pkg/logger"
	orderpg "coffeeshop/pkg/order/postgres"
	"coffeeshop/pkg/otel"
)

func main() {
	envFile := flag.String("env", os.Getenv("ENV_FILE"), "path to .env file")
	seed := flag.Bool("seed", true, "create the admin account and sample menu")
	list := flag.Bool("list", false, "print the embedded migrations and exit")
	flag.Parse()

	if *list {
		ms, err := db.Migrations()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, m := range ms {
			fmt.Println(m.Version)
		}
		return
	}

	cfg, err := config.LoadStorage(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel), "coffeeshop-migrate", otel.GetTraceID)
	defer log.Sync()

	if err := run(context.Background(), cfg, log, *seed); err != nil {
		log.Error(context.Background(), "migrate", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, seed bool) error {
	if cfg.Storage != config.StoragePostgres {
		return fmt.Errorf("STORAGE=%s has no schema to migrate", cfg.Storage)
	}

	conn, err := db.Open(ctx, log, cfg.DSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Migrate(ctx, log, conn); err != nil {
		return err
	}
	if !seed {
		return nil
	}
	accounts := account.NewService(accountpg.New(conn), orderpg.New(conn))
	return db.Seed(ctx, log, accounts, catalogpg.New(conn), cfg.AdminPassword)
}
