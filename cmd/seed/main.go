// cmd/seed/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	_ "github.com/jackc/pgx/v5/stdlib"

	"stocklens/internal/repository/sqlite"
	"stocklens/internal/seed"
)

func newDataDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Usage:   "Directory holding the five inventory CSV files",
		Value:   "./data",
		EnvVars: []string{"SEED_DATA_DIR"},
	}
}

func newDBPathFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "db-path",
		Usage:   "SQLite database file",
		Value:   "./inventory.db",
		EnvVars: []string{"DB_PATH"},
	}
}

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "db-url",
		Usage:   "Postgres connection string (loads into Postgres instead of SQLite)",
		EnvVars: []string{"DATABASE_URL"},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Generate sample inventory data and load it into the database",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate a deterministic sample dataset as CSV files",
				Flags: []cli.Flag{
					newDataDirFlag(),
					&cli.Int64Flag{Name: "seed", Usage: "RNG seed", Value: 42},
					&cli.IntFlag{Name: "products", Value: 150},
					&cli.IntFlag{Name: "suppliers", Value: 20},
					&cli.IntFlag{Name: "transactions", Value: 800},
					&cli.IntFlag{Name: "purchase-orders", Value: 100},
				},
				Action: runGenerate,
			},
			{
				Name:  "load",
				Usage: "Create the schema and load the CSV dataset into the database",
				Flags: []cli.Flag{
					newDataDirFlag(),
					newDBPathFlag(),
					newDBURLFlag(),
				},
				Action: runLoad,
			},
			{
				Name:  "all",
				Usage: "Generate the sample dataset and load it in one pass",
				Flags: []cli.Flag{
					newDataDirFlag(),
					newDBPathFlag(),
					newDBURLFlag(),
					&cli.Int64Flag{Name: "seed", Usage: "RNG seed", Value: 42},
					&cli.IntFlag{Name: "products", Value: 150},
					&cli.IntFlag{Name: "suppliers", Value: 20},
					&cli.IntFlag{Name: "transactions", Value: 800},
					&cli.IntFlag{Name: "purchase-orders", Value: 100},
				},
				Action: func(c *cli.Context) error {
					if err := runGenerate(c); err != nil {
						return fmt.Errorf("generate: %w", err)
					}
					if err := runLoad(c); err != nil {
						return fmt.Errorf("load: %w", err)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runGenerate(c *cli.Context) error {
	cfg := seed.DefaultConfig(time.Now().UTC())
	cfg.Seed = c.Int64("seed")
	cfg.Products = c.Int("products")
	cfg.Suppliers = c.Int("suppliers")
	cfg.Transactions = c.Int("transactions")
	cfg.PurchaseOrders = c.Int("purchase-orders")

	snap := seed.Generate(cfg)

	dir := c.String("data-dir")
	if err := seed.WriteCSVDir(snap, dir); err != nil {
		return fmt.Errorf("write csv dataset: %w", err)
	}
	log.Printf("wrote sample dataset to %s (%d products, %d suppliers, %d sales, %d purchase orders)",
		dir, len(snap.Products), len(snap.Suppliers), len(snap.Sales), len(snap.PurchaseOrders))
	return nil
}

func runLoad(c *cli.Context) error {
	snap, err := seed.ReadCSVDir(c.String("data-dir"))
	if err != nil {
		return fmt.Errorf("read csv dataset: %w", err)
	}

	ctx := c.Context

	if dbURL := c.String("db-url"); dbURL != "" {
		db, err := sqlx.ConnectContext(ctx, "pgx", dbURL)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer db.Close()
		return seed.InsertSnapshot(ctx, db, snap)
	}

	store, err := sqlite.Open(c.String("db-path"))
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer store.Close()

	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return seed.InsertSnapshot(ctx, store.DB(), snap)
}
