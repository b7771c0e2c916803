package database_test

import (
	"testing"

	"github.com/amanijl/courtside/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDBLocal(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	require.NoError(t, db.Ping())

	// Migrations must have created the players table and the version row.
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM players").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var version int64
	err = db.QueryRow("SELECT version FROM roster_version WHERE id = 1").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}

func TestInitDBIsIdempotent(t *testing.T) {
	path := t.TempDir() + "/courtside.db"

	db, teardown, err := database.InitDB(path, "", "", "../../migrations")
	require.NoError(t, err)
	teardown()

	db, teardown, err = database.InitDB(path, "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()
	require.NoError(t, db.Ping())
}
