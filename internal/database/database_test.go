package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelsite/internal/domain"
)

func TestConnect_SQLiteInMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err, "the sqlite driver must be registered")
	require.NoError(t, Migrate(db))

	// Schema is usable end to end.
	room := domain.Room{Number: "101", Type: "Standard", Status: domain.RoomAvailable}
	require.NoError(t, db.Create(&room).Error)

	var got domain.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, "101", got.Number)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "re-running migrations must not error")
}
