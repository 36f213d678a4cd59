// cmd/analyze/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"stocklens/internal/config"
	"stocklens/internal/engine"
	"stocklens/internal/render"
	"stocklens/internal/repository"
	"stocklens/internal/repository/postgres"
	"stocklens/internal/repository/sqlite"
	"stocklens/internal/storage"
)

func main() {
	dbPath := flag.String("db-path", "./inventory.db", "SQLite database file")
	dbURL := flag.String("db-url", "", "Postgres connection string (overrides -db-path)")
	asOfStr := flag.String("as-of", time.Now().UTC().Format("2006-01-02"), "Analysis date in YYYY-MM-DD format")
	outputDir := flag.String("output-dir", "./results", "Directory for rendered report files")
	windowDays := flag.Int("window-days", 90, "Trailing sales window in days")
	upload := flag.Bool("upload", false, "Upload rendered reports to the configured S3 bucket")
	flag.Parse()

	day, err := time.Parse("2006-01-02", *asOfStr)
	if err != nil {
		log.Fatalf("Invalid -as-of date %q: %v", *asOfStr, err)
	}
	asOf := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC)

	ctx := context.Background()

	repo, cleanup, err := openRepository(ctx, *dbURL, *dbPath)
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}
	defer cleanup()

	snap, err := repo.LoadSnapshot(ctx)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	start := time.Now()
	report, err := engine.NewWithWindow(*windowDays).Run(ctx, snap, asOf)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	log.Printf("Analysis completed in %v", time.Since(start))

	paths, err := render.WriteReportDir(report, *outputDir)
	if err != nil {
		log.Fatalf("Failed to render reports: %v", err)
	}

	fmt.Print(render.Summary(report))

	if *upload {
		if err := uploadReports(ctx, asOf, paths); err != nil {
			log.Fatalf("Failed to upload reports: %v", err)
		}
	}
}

func openRepository(ctx context.Context, dbURL, dbPath string) (repository.SnapshotRepository, func(), error) {
	if dbURL != "" {
		db, err := postgres.NewDBFromURL(ctx, "pgx", dbURL)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewSnapshotRepository(db), func() { db.Close() }, nil
	}

	if _, err := os.Stat(dbPath); err != nil {
		return nil, nil, fmt.Errorf("sqlite database %s: %w", dbPath, err)
	}
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}

func uploadReports(ctx context.Context, asOf time.Time, paths []string) error {
	client, err := storage.NewS3Client(config.Load().Storage)
	if err != nil {
		return err
	}
	prefix := "reports/" + asOf.Format("2006-01-02")
	for _, path := range paths {
		key := prefix + "/" + filepath.Base(path)
		if err := client.UploadFile(ctx, key, path); err != nil {
			return err
		}
		log.Printf("Uploaded %s", key)
	}
	return nil
}
