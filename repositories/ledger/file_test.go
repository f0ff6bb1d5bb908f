package ledger_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"rss-announcer/models/entities"
	"rss-announcer/repositories/ledger"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posted_urls.json")
	repo := ledger.NewFile(path)

	loaded := repo.Load()
	assert.Equal(t, 0, loaded.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestFileSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posted_urls.json")
	repo := ledger.NewFile(path)

	repo.Save(entities.NewLedger("https://a.example/1", "https://a.example/2"))

	loaded := repo.Load()
	assert.Equal(t, []string{"https://a.example/1", "https://a.example/2"}, loaded.Links())

	var links []string
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &links))
	assert.ElementsMatch(t, []string{"https://a.example/1", "https://a.example/2"}, links)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posted_urls.json")
	repo := ledger.NewFile(path)

	repo.Save(entities.NewLedger("a"))
	repo.Save(entities.NewLedger("a", "b"))

	assert.Equal(t, []string{"a", "b"}, repo.Load().Links())
}

func TestFileLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posted_urls.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	loaded := ledger.NewFile(path).Load()
	assert.Equal(t, 0, loaded.Len())
}

func TestFileLoadUnreadablePath(t *testing.T) {
	// A directory exists at the path, so reading it fails.
	path := t.TempDir()

	loaded := ledger.NewFile(path).Load()
	assert.Equal(t, 0, loaded.Len())
}

func TestFileSaveFailureIsNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "posted_urls.json")
	repo := ledger.NewFile(path)

	assert.NotPanics(t, func() { repo.Save(entities.NewLedger("a")) })
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
