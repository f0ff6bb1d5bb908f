package dispatch

import (
	"context"
	"rss-announcer/pkg/observer"
	"rss-announcer/repositories/feedsources"
	"rss-announcer/repositories/ledger"
	"rss-announcer/services/feeds"
	"rss-announcer/services/mastodon"
	"sync/atomic"
)

type Service interface {
	RegisterObserver(o observer.Observer)
	RunCycle(ctx context.Context) Report
}

type Impl struct {
	ledgerRepo ledger.Repository
	provider   feedsources.Provider
	fetcher    feeds.Service
	publisher  mastodon.Service
	observers  map[observer.Observer]struct{}
	running    atomic.Bool
}

// Report counts what a single cycle did.
type Report struct {
	Sources     int
	Fetched     int
	FetchFailed int
	Published   int
	Failed      int
	Skipped     int
	Persisted   int
	// Dropped is set when another cycle was still running.
	Dropped bool
}
