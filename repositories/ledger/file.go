package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"rss-announcer/models/constants"
	"rss-announcer/models/entities"

	"github.com/rs/zerolog/log"
)

const ledgerFilePerm = 0o644

func NewFile(path string) *FileImpl {
	return &FileImpl{path: path}
}

func (repo *FileImpl) Load() *entities.Ledger {
	if _, err := os.Stat(repo.path); errors.Is(err, os.ErrNotExist) {
		log.Info().Str(constants.LogFileName, repo.path).Msg("Ledger file does not exist, creating a new one")
		if errInit := repo.write([]string{}); errInit != nil {
			log.Error().Err(errInit).Str(constants.LogFileName, repo.path).Msg("Cannot create ledger file, continue with an empty ledger")
			return entities.NewLedger()
		}
	}

	data, err := os.ReadFile(repo.path)
	if err != nil {
		log.Error().Err(err).Str(constants.LogFileName, repo.path).Msg("Cannot read ledger file, continue with an empty ledger")
		return entities.NewLedger()
	}

	var links []string
	if errJSON := json.Unmarshal(data, &links); errJSON != nil {
		log.Error().Err(errJSON).Str(constants.LogFileName, repo.path).Msg("Cannot parse ledger file, continue with an empty ledger")
		return entities.NewLedger()
	}

	return entities.NewLedger(links...)
}

func (repo *FileImpl) Save(ledger *entities.Ledger) {
	if err := repo.write(ledger.Links()); err != nil {
		log.Error().Err(err).Str(constants.LogFileName, repo.path).Msg("Cannot save ledger file")
		return
	}

	log.Debug().
		Str(constants.LogFileName, repo.path).
		Int(constants.LogLedgerSize, ledger.Len()).
		Msg("Ledger file updated")
}

// write replaces the file through a rename so a reader never sees a
// partially written ledger.
func (repo *FileImpl) write(links []string) error {
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	tmp := repo.path + ".tmp"
	if err := os.WriteFile(tmp, data, ledgerFilePerm); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}

	if err := os.Rename(tmp, repo.path); err != nil {
		return fmt.Errorf("failed to replace ledger: %w", err)
	}

	return nil
}
