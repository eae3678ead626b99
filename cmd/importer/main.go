package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"delivery-tracker/internal/config"
	"delivery-tracker/internal/models"
	"delivery-tracker/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	file := flag.String("file", "", "Path to the taxonomy CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	paths, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d paths\n", len(paths))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgxpool.New(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Ensure tables exist
	if err := repository.EnsureSchema(context.Background(), conn); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}

	inserted, skipped, err := insertPaths(conn, paths)
	if err != nil {
		fmt.Printf("Error inserting paths: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d paths (%d duplicates skipped)\n", inserted, skipped)
}

// parseCSV reads taxonomy rows: gate, road, road_side, main_alley,
// main_alley_side, sub_alley, sub_alley_side. Columns after gate may be
// empty; empty cells become the "-" placeholder on insert.
func parseCSV(filePath string) ([]models.TaxonomyPath, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var paths []models.TaxonomyPath
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		var levels [models.PathLevels]string
		for i := 0; i < models.PathLevels && i < len(record); i++ {
			levels[i] = record[i]
		}
		path := models.PathFromLevels(levels).Normalized()
		if path.Gate == models.Placeholder {
			return nil, fmt.Errorf("line %d: gate column is required", line)
		}

		paths = append(paths, path)
	}

	return paths, nil
}

// insertPaths appends each path through the repository, skipping ones
// already stored (re-running the importer must not duplicate rows).
func insertPaths(conn *pgxpool.Pool, paths []models.TaxonomyPath) (inserted, skipped int, err error) {
	ctx := context.Background()
	repo := repository.NewTaxonomyRepository(conn)

	existing, err := repo.ListAll(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, p := range paths {
		dup := false
		for _, e := range existing {
			if e.Equal(p) {
				dup = true
				break
			}
		}
		if dup {
			skipped++
			continue
		}
		if err := repo.Append(ctx, p); err != nil {
			return inserted, skipped, err
		}
		existing = append(existing, p)
		inserted++
	}

	return inserted, skipped, nil
}
