package entities_test

import (
	"rss-announcer/models/entities"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerAdd(t *testing.T) {
	ledger := entities.NewLedger("a", "b", "a")

	assert.Equal(t, 2, ledger.Len())
	assert.True(t, ledger.Has("a"))
	assert.False(t, ledger.Has("c"))

	assert.True(t, ledger.Add("c"))
	assert.False(t, ledger.Add("b"))
	assert.Equal(t, []string{"a", "b", "c"}, ledger.Links())
}

func TestLedgerLinksIsACopy(t *testing.T) {
	ledger := entities.NewLedger("a")
	links := ledger.Links()
	links[0] = "changed"

	assert.True(t, ledger.Has("a"))
	assert.Equal(t, []string{"a"}, ledger.Links())
}

func TestEmptyLedger(t *testing.T) {
	ledger := entities.NewLedger()

	assert.Equal(t, 0, ledger.Len())
	assert.Empty(t, ledger.Links())
	assert.False(t, ledger.Has(""))
}
