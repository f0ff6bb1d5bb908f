package ledger

import (
	"rss-announcer/models/entities"
	"rss-announcer/utils/databases"
)

// Repository persists the announced links. Implementations never fail the
// caller: errors are logged, Load falls back to an empty ledger and Save
// leaves the previous state in place.
type Repository interface {
	Load() *entities.Ledger
	Save(ledger *entities.Ledger)
}

type FileImpl struct {
	path string
}

type SqliteImpl struct {
	db databases.SqlConnection
}
