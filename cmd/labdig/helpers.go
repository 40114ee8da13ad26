package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/catalog"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/config"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/storage"
	"github.com/spf13/viper"
)

// openStorage opens the analysis database and brings its schema up to
// date. Callers own the returned store and must Close it.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// loadCatalog resolves the test catalog: a user-supplied YAML file
// when given, the built-in rule set otherwise.
func loadCatalog(path string) ([]model.TestDefinition, error) {
	if path == "" {
		if configured := viper.GetString("catalog.path"); configured != "" {
			path = configured
		}
	}
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.Load(config.ExpandPath(path))
}

// collectFiles expands glob patterns and plain paths into the list of
// files to analyze, skipping patterns that match nothing.
func collectFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file.
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			}
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
