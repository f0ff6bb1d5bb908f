package constants

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	ConfigFileName = ".env"

	ExternalName = "rss-announcer"
	Version      = "1.0.0"

	//nolint:gosec // False positive.
	// Bearer token used to post statuses.
	MastodonAccessToken = "MASTODON_ACCESS_TOKEN"

	// Statuses endpoint of the Mastodon instance.
	MastodonAPIURL = "MASTODON_API_URL"

	// Feed source provider, from [static, remote].
	FeedSource = "FEED_SOURCE"

	// Comma-separated feed URLs overriding the built-in list, static provider only.
	FeedURLs = "FEED_URLS"

	// Endpoint returning the feed list, remote provider only.
	FeedConfigURL = "FEED_CONFIG_URL"

	// Ledger backend, from [file, sqlite].
	LedgerBackend = "LEDGER_BACKEND"

	// JSON file holding announced links, file backend only.
	LedgerFile = "LEDGER_FILE"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Delay between two dispatch cycles. Duration type.
	PollInterval = "POLL_INTERVAL"

	// Timeout in seconds when reading a feed.
	RSSTimeout = "RSS_TIMEOUT"

	// Timeout in seconds for config and Mastodon calls.
	HTTPTimeout = "HTTP_TIMEOUT"

	// User agent sent when reading feeds.
	UserAgent = "USER_AGENT"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	FeedSourceStatic = "static"
	FeedSourceRemote = "remote"

	LedgerBackendFile   = "file"
	LedgerBackendSqlite = "sqlite"

	defaultMastodonAccessToken = ""
	defaultMastodonAPIURL      = "https://social.nove-b.dev/api/v1/statuses"
	defaultFeedSource          = FeedSourceStatic
	defaultFeedURLs            = ""
	defaultFeedConfigURL       = ""
	defaultLedgerBackend       = LedgerBackendFile
	defaultLedgerFile          = "posted_urls.json"
	defaultSqliteURL           = "rss-announcer.db"
	defaultPollInterval        = 30 * time.Minute
	defaultRSSTimeout          = 30
	defaultHTTPTimeout         = 30
	defaultUserAgent           = "rss-announcer/" + Version
	defaultHealthCrontab       = "0 * * * *"
	defaultLogLevel            = zerolog.InfoLevel
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		MastodonAccessToken: defaultMastodonAccessToken,
		MastodonAPIURL:      defaultMastodonAPIURL,
		FeedSource:          defaultFeedSource,
		FeedURLs:            defaultFeedURLs,
		FeedConfigURL:       defaultFeedConfigURL,
		LedgerBackend:       defaultLedgerBackend,
		LedgerFile:          defaultLedgerFile,
		SqliteURL:           defaultSqliteURL,
		PollInterval:        defaultPollInterval,
		RSSTimeout:          defaultRSSTimeout,
		HTTPTimeout:         defaultHTTPTimeout,
		UserAgent:           defaultUserAgent,
		HealthCronTab:       defaultHealthCrontab,
		LogLevel:            defaultLogLevel.String(),
	}
}
