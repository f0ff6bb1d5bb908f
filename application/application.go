package application

import (
	"errors"
	"fmt"
	"rss-announcer/models/constants"
	"rss-announcer/models/entities"
	"rss-announcer/repositories/feedsources"
	"rss-announcer/repositories/ledger"
	"rss-announcer/services/dispatch"
	"rss-announcer/services/feeds"
	"rss-announcer/services/health"
	"rss-announcer/services/mastodon"
	databases "rss-announcer/utils/databases"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ErrUnknownFeedSource    = errors.New("unknown feed source")
	ErrUnknownLedgerBackend = errors.New("unknown ledger backend")
	ErrFeedConfigURLMissing = errors.New("feed config URL is missing")
)

func New() (*Impl, error) {
	scheduler, errScheduler := gocron.NewScheduler()
	if errScheduler != nil {
		return nil, errScheduler
	}

	app := &Impl{scheduler: scheduler}
	fail := func(err error) (*Impl, error) {
		if app.db != nil {
			app.db.Shutdown()
		}
		return nil, err
	}

	publisher, errPublisher := mastodon.New(
		viper.GetString(constants.MastodonAPIURL),
		viper.GetString(constants.MastodonAccessToken),
		time.Duration(viper.GetInt(constants.HTTPTimeout))*time.Second,
	)
	if errPublisher != nil {
		return fail(errPublisher)
	}

	provider, errProvider := newFeedSourceProvider()
	if errProvider != nil {
		return fail(errProvider)
	}

	fetcher := feeds.New(
		viper.GetString(constants.UserAgent),
		time.Duration(viper.GetInt(constants.RSSTimeout))*time.Second,
	)

	ledgerRepo, errLedger := app.newLedgerRepository()
	if errLedger != nil {
		return fail(errLedger)
	}

	healthService, errHealth := health.New(scheduler, viper.GetString(constants.HealthCronTab))
	if errHealth != nil {
		return fail(errHealth)
	}

	dispatchService, errDispatch := dispatch.New(scheduler,
		viper.GetDuration(constants.PollInterval),
		ledgerRepo, provider, fetcher, publisher)
	if errDispatch != nil {
		return fail(errDispatch)
	}

	dispatchService.RegisterObserver(healthService)

	app.healthService = healthService
	app.dispatchService = dispatchService
	return app, nil
}

func (app *Impl) newLedgerRepository() (ledger.Repository, error) {
	switch backend := viper.GetString(constants.LedgerBackend); backend {
	case constants.LedgerBackendFile:
		return ledger.NewFile(viper.GetString(constants.LedgerFile)), nil
	case constants.LedgerBackendSqlite:
		db := databases.New(viper.GetString(constants.SqliteURL))
		if errDB := db.Run(&entities.AnnouncedLink{}); errDB != nil {
			return nil, errDB
		}
		app.db = db
		return ledger.NewSqlite(db), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownLedgerBackend, backend)
	}
}

func newFeedSourceProvider() (feedsources.Provider, error) {
	switch source := viper.GetString(constants.FeedSource); source {
	case constants.FeedSourceStatic:
		urls := constants.GetStaticFeedURLs()
		if override := viper.GetString(constants.FeedURLs); override != "" {
			urls = strings.Split(override, ",")
		}
		return feedsources.NewStatic(urls), nil
	case constants.FeedSourceRemote:
		endpoint := viper.GetString(constants.FeedConfigURL)
		if endpoint == "" {
			return nil, ErrFeedConfigURLMissing
		}
		return feedsources.NewRemote(endpoint, time.Duration(viper.GetInt(constants.HTTPTimeout))*time.Second), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFeedSource, source)
	}
}

func (app *Impl) Run() {
	app.scheduler.Start()
	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}
}

func (app *Impl) Shutdown() {
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}
	if app.db != nil {
		app.db.Shutdown()
	}
	log.Info().Msgf("Application is no longer running")
}
