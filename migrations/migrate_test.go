package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmbeddedMigrations verifies the migration files are embedded and carry
// both goose directions.
func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		assert.True(t, strings.HasSuffix(entry.Name(), ".sql"), entry.Name())

		contents, err := embedMigrations.ReadFile(entry.Name())
		require.NoError(t, err)
		assert.Contains(t, string(contents), "+goose Up")
		assert.Contains(t, string(contents), "+goose Down")
	}
}

func TestUsersTableMigration(t *testing.T) {
	contents, err := embedMigrations.ReadFile("00001_create_users_table.sql")
	require.NoError(t, err)

	sql := string(contents)
	assert.Contains(t, sql, "CREATE TABLE")
	assert.Contains(t, sql, "users")
	assert.Contains(t, sql, "email")
	assert.Contains(t, sql, "password_hash")
	// uniqueness of email is enforced at the storage layer
	assert.Contains(t, sql, "UNIQUE")
}
