package feedsources

import (
	"context"
	"net/http"
	"rss-announcer/models/entities"
)

type Provider interface {
	Provides(ctx context.Context) []entities.FeedSource
}

type StaticImpl struct {
	sources []entities.FeedSource
}

type RemoteImpl struct {
	endpoint string
	client   *http.Client
}

// remoteFeedSource mirrors the config API payload. The API misspells the
// title key as "titile".
type remoteFeedSource struct {
	Titile string   `json:"titile"`
	Title  string   `json:"title"`
	URL    string   `json:"url"`
	Tags   []string `json:"tags"`
}
