package database_test

import (
	"testing"

	"github.com/sahadan/halisaha/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDBRunsMigrations(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='entities'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "entities", name)
}

func TestInitDBIsIdempotent(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	// Running goose again against the same connection must be a no-op.
	db2, teardown2, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown2()

	assert.NotNil(t, db)
	assert.NotNil(t, db2)
}
