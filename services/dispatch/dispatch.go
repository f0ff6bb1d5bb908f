package dispatch

import (
	"context"
	"rss-announcer/models/constants"
	"rss-announcer/models/entities"
	"rss-announcer/pkg/observer"
	"rss-announcer/repositories/feedsources"
	"rss-announcer/repositories/ledger"
	"rss-announcer/services/feeds"
	"rss-announcer/services/mastodon"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

func New(scheduler gocron.Scheduler,
	interval time.Duration,
	ledgerRepo ledger.Repository,
	provider feedsources.Provider,
	fetcher feeds.Service,
	publisher mastodon.Service) (*Impl, error) {
	service := &Impl{
		ledgerRepo: ledgerRepo,
		provider:   provider,
		fetcher:    fetcher,
		publisher:  publisher,
		observers:  map[observer.Observer]struct{}{},
	}

	_, errJob := scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { service.RunCycle(context.Background()) }),
		gocron.WithName("Dispatch feeds"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if errJob != nil {
		return nil, errJob
	}

	return service, nil
}

func (service *Impl) RegisterObserver(o observer.Observer) {
	service.observers[o] = struct{}{}
}

func (service *Impl) notify(e observer.Event) {
	for o := range service.observers {
		o.OnNotify(e)
	}
}

// RunCycle loads the ledger, announces every new item of every source and
// saves the ledger after each source that got at least one new post.
// Only one cycle runs at a time; a concurrent call is dropped.
func (service *Impl) RunCycle(ctx context.Context) (report Report) {
	if !service.running.CompareAndSwap(false, true) {
		log.Warn().Msg("Previous dispatch cycle is still running, this one is dropped")
		report.Dropped = true
		return report
	}
	defer service.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Dispatch cycle aborted, waiting for the next one")
		}
	}()

	start := time.Now()
	log.Info().Msg("Checking feeds...")

	postedLinks := service.ledgerRepo.Load()
	sources := service.provider.Provides(ctx)
	if len(sources) == 0 {
		log.Info().Msg("No feed source to check, nothing to do")
		return report
	}
	report.Sources = len(sources)

	for _, source := range sources {
		service.checkFeed(ctx, source, postedLinks, &report)
	}

	log.Info().
		Int(constants.LogFeedNumber, report.Sources).
		Int(constants.LogItemNumber, report.Published).
		Int("failed", report.Failed).
		Int(constants.LogLedgerSize, postedLinks.Len()).
		Dur("duration", time.Since(start)).
		Msg("Feeds checked")

	service.notify(observer.NewCycleCompletedEvent(observer.CycleSummary{
		Sources:   report.Sources,
		Published: report.Published,
		Failed:    report.Failed,
	}))

	return report
}

func (service *Impl) checkFeed(ctx context.Context, source entities.FeedSource,
	postedLinks *entities.Ledger, report *Report) {
	log.Info().
		Str(constants.LogFeedURL, source.URL).
		Str(constants.LogFeedTitle, source.Title).
		Msgf("Reading feed source...")

	items, err := service.fetcher.Fetch(ctx, source.URL)
	if err != nil {
		log.Error().
			Err(err).
			Str(constants.LogFeedURL, source.URL).
			Msgf("Cannot read feed, source ignored")
		report.FetchFailed++
		return
	}
	report.Fetched++

	if len(items) == 0 {
		log.Info().Str(constants.LogFeedURL, source.URL).Msg("No items found in feed")
		return
	}

	hasNewPost := false
	publishedItems := 0
	for _, item := range items {
		if item.Link == "" || postedLinks.Has(item.Link) {
			report.Skipped++
			continue
		}

		resp, errPublish := service.publisher.Publish(ctx, ComposeStatus(source, item))
		if errPublish != nil {
			log.Error().Err(errPublish).
				Str(constants.LogFeedURL, source.URL).
				Str(constants.LogFeedItemLink, item.Link).
				Msgf("Cannot publish feed item, it will be retried next cycle")
			report.Failed++
			continue
		}

		postedLinks.Add(item.Link)
		hasNewPost = true
		publishedItems++
		report.Published++

		event := log.Info().
			Str(constants.LogFeedItemLink, item.Link).
			Str(constants.LogFeedItemTitle, item.Title)
		if resp != nil && resp.ID != "" {
			event = event.Str("statusID", resp.ID)
		}
		event.Msg("Feed item published")

		service.notify(observer.NewItemAnnouncedEvent(source, item))
	}

	if hasNewPost {
		service.ledgerRepo.Save(postedLinks)
		report.Persisted++
	}

	log.Info().
		Str(constants.LogFeedURL, source.URL).
		Int(constants.LogItemNumber, publishedItems).
		Msgf("Feed read and published")
}
