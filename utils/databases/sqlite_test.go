package databases_test

import (
	"path/filepath"
	"rss-announcer/models/entities"
	"rss-announcer/utils/databases"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAndShutdown(t *testing.T) {
	db := databases.New(filepath.Join(t.TempDir(), "test.db"))
	assert.False(t, db.IsConnected())

	require.NoError(t, db.Run(&entities.AnnouncedLink{}))
	assert.True(t, db.IsConnected())
	assert.True(t, db.GetDB().Migrator().HasTable(&entities.AnnouncedLink{}))

	db.Shutdown()
	assert.False(t, db.IsConnected())
}

func TestShutdownWithoutRun(t *testing.T) {
	db := databases.New(filepath.Join(t.TempDir(), "test.db"))
	assert.NotPanics(t, db.Shutdown)
}
