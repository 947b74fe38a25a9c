package migration

import (
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EmptyDSN(t *testing.T) {
	err := Run(slog.Default(), "", DirectionUp, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database url is not set")
}

func TestRun_InvalidDirection(t *testing.T) {
	for _, direction := range []string{"", "sideways", "UP", "Down"} {
		t.Run(direction, func(t *testing.T) {
			err := Run(slog.Default(), "postgres://localhost/crm", direction, 0)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "direction must be up or down")
		})
	}
}

func TestRun_NegativeSteps(t *testing.T) {
	err := Run(slog.Default(), "postgres://localhost/crm", DirectionUp, -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must not be negative")
}

func TestMigrationFS_UpAndDownPairs(t *testing.T) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations: %s", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestMigrationFS_PendingIndexIsPartial(t *testing.T) {
	raw, err := fs.ReadFile(migrationFS, "migrations/000001_init_schema.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "WHERE processed = FALSE")
	assert.Contains(t, string(raw), "ON DELETE CASCADE")
}
