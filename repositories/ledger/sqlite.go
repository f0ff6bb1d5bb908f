package ledger

import (
	"rss-announcer/models/constants"
	"rss-announcer/models/entities"
	"rss-announcer/utils/databases"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 100

func NewSqlite(db databases.SqlConnection) *SqliteImpl {
	return &SqliteImpl{db: db}
}

func (repo *SqliteImpl) Load() *entities.Ledger {
	var records []entities.AnnouncedLink
	result := repo.db.GetDB().
		Model(&entities.AnnouncedLink{}).
		Order("created_at").
		Order("rowid").
		Find(&records)
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("Cannot read announced links, continue with an empty ledger")
		return entities.NewLedger()
	}

	ledger := entities.NewLedger()
	for _, record := range records {
		ledger.Add(record.Link)
	}

	return ledger
}

// Save only inserts links; the ledger never shrinks so existing rows are
// left untouched.
func (repo *SqliteImpl) Save(ledger *entities.Ledger) {
	links := ledger.Links()
	if len(links) == 0 {
		return
	}

	records := make([]entities.AnnouncedLink, 0, len(links))
	for _, link := range links {
		records = append(records, entities.AnnouncedLink{Link: link})
	}

	result := repo.db.GetDB().
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&records, insertBatchSize)
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("Cannot save announced links")
		return
	}

	log.Debug().
		Int(constants.LogLedgerSize, ledger.Len()).
		Int64("inserted", result.RowsAffected).
		Msg("Announced links updated")
}
