package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogFeedURL       = "feedURL"
	LogFeedTitle     = "feedTitle"
	LogFeedItemLink  = "feedItemLink"
	LogFeedItemTitle = "feedItemTitle"
	LogFeedNumber    = "feedNumber"
	LogItemNumber    = "itemNumber"
	LogLedgerSize    = "ledgerSize"
	LogStatusCode    = "statusCode"
	LogLevelFallback = zerolog.InfoLevel
)
