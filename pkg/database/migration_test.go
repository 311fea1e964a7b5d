package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masgolf/config"
)

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_bookings.sql", "0001_settings.sql", "README.md", "broken.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "0003_dir.sql"), 0o755))

	var skipped []string
	migrations, err := ListMigrations(dir, func(file string) { skipped = append(skipped, file) })
	require.NoError(t, err)

	require.Len(t, migrations, 2)
	assert.Equal(t, "0001", migrations[0].Version)
	assert.Equal(t, "settings", migrations[0].Name)
	assert.Equal(t, "0002", migrations[1].Version)
	assert.Equal(t, filepath.Join(dir, "0002_bookings.sql"), migrations[1].File)
	assert.Equal(t, []string{"broken.sql"}, skipped)
}

func TestListMigrations_MissingDir(t *testing.T) {
	_, err := ListMigrations(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}

func TestListMigrations_RepositoryMigrations(t *testing.T) {
	migrations, err := ListMigrations("../../migrations", nil)
	require.NoError(t, err)

	var names []string
	for _, m := range migrations {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"booking_settings", "bookings", "booking_blocks", "booking_hours", "admin_sessions"}, names)
}

func TestConnString(t *testing.T) {
	cfg := config.PostgresConfig{
		Host:     "db",
		Port:     "5432",
		Username: "golf",
		Password: "p@ss/word",
		DBName:   "masgolf",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://golf:p%40ss%2Fword@db:5432/masgolf?sslmode=disable", ConnString(cfg))
}
