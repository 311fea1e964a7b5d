package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type MigrationFile struct {
	Version string
	Name    string
	File    string
}

// ListMigrations returns the "<version>_<name>.sql" files of dir ordered by file name.
// Files that do not follow the naming scheme are reported through skip.
func ListMigrations(dir string, skip func(file string)) ([]MigrationFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var migrations []MigrationFile
	for _, file := range names {
		parts := strings.SplitN(file, "_", 2)
		if len(parts) != 2 || parts[0] == "" {
			if skip != nil {
				skip(file)
			}
			continue
		}
		migrations = append(migrations, MigrationFile{
			Version: parts[0],
			Name:    strings.TrimSuffix(parts[1], ".sql"),
			File:    filepath.Join(dir, file),
		})
	}

	return migrations, nil
}

func RunMigrations(ctx context.Context, db *pgxpool.Pool, migrationsDir string, logger *zap.Logger) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			version VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	rows, err := db.Query(ctx, "SELECT version FROM migrations")
	if err != nil {
		return fmt.Errorf("list applied migrations: %w", err)
	}

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			rows.Close()
			return fmt.Errorf("scan migration record: %w", err)
		}
		applied[version] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list applied migrations: %w", err)
	}

	migrations, err := ListMigrations(migrationsDir, func(file string) {
		logger.Warn("invalid migration file name", zap.String("file", file))
	})
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			logger.Debug("migration already applied", zap.String("version", m.Version), zap.String("name", m.Name))
			continue
		}

		content, err := os.ReadFile(m.File)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", m.File, err)
		}

		logger.Info("applying migration", zap.String("version", m.Version), zap.String("name", m.Name))

		tx, err := db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}

		if _, err = tx.Exec(ctx, string(content)); err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("apply migration %s: %w", m.File, err)
		}

		_, err = tx.Exec(ctx,
			"INSERT INTO migrations (version, name, applied_at) VALUES ($1, $2, $3)",
			m.Version, m.Name, time.Now(),
		)
		if err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("record migration %s: %w", m.File, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migration %s: %w", m.File, err)
		}
	}

	return nil
}
