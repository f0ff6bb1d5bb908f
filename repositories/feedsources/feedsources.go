package feedsources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"rss-announcer/models/constants"
	"rss-announcer/models/entities"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

func NewStatic(urls []string) *StaticImpl {
	sources := make([]entities.FeedSource, 0, len(urls))
	for _, rawURL := range urls {
		rawURL = strings.TrimSpace(rawURL)
		if rawURL == "" {
			continue
		}
		sources = append(sources, entities.FeedSource{
			Title: titleFromURL(rawURL),
			URL:   rawURL,
			Tags:  []string{},
		})
	}

	return &StaticImpl{sources: sources}
}

func (provider *StaticImpl) Provides(_ context.Context) []entities.FeedSource {
	sources := make([]entities.FeedSource, len(provider.sources))
	copy(sources, provider.sources)
	return sources
}

func titleFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

func NewRemote(endpoint string, timeout time.Duration) *RemoteImpl {
	return &RemoteImpl{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (provider *RemoteImpl) Provides(ctx context.Context) []entities.FeedSource {
	payload, err := provider.fetch(ctx)
	if err != nil {
		log.Error().Err(err).Str(constants.LogFeedURL, provider.endpoint).Msg("Cannot retrieve feed sources, nothing to do")
		return []entities.FeedSource{}
	}

	sources := make([]entities.FeedSource, 0, len(payload))
	for _, remote := range payload {
		if remote.URL == "" {
			log.Warn().Str(constants.LogFeedTitle, remote.title()).Msg("Feed source without URL, ignored")
			continue
		}

		tags := remote.Tags
		if tags == nil {
			tags = []string{}
		}

		sources = append(sources, entities.FeedSource{
			Title: remote.title(),
			URL:   remote.URL,
			Tags:  tags,
		})
	}

	log.Debug().Int(constants.LogFeedNumber, len(sources)).Msg("Feed sources retrieved")
	return sources
}

func (provider *RemoteImpl) fetch(ctx context.Context) ([]remoteFeedSource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, provider.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := provider.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("API request failed with status: %d", resp.StatusCode)
	}

	var result []remoteFeedSource
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

func (remote remoteFeedSource) title() string {
	if remote.Titile != "" {
		return remote.Titile
	}
	return remote.Title
}
