package feeds

import (
	"context"
	"errors"
	"rss-announcer/models/entities"
	"time"

	"github.com/mmcdole/gofeed"
)

var (
	ErrEmptyURL = errors.New("feed URL is empty")
)

type Service interface {
	Fetch(ctx context.Context, url string) ([]entities.FeedItem, error)
}

type Impl struct {
	feedParser *gofeed.Parser
	timeout    time.Duration
}
