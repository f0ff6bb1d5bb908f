package feeds

import (
	"context"
	"fmt"
	"rss-announcer/models/entities"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

func New(userAgent string, timeout time.Duration) *Impl {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	return &Impl{
		feedParser: fp,
		timeout:    timeout,
	}
}

// Fetch reads the feed at url and returns its items in feed order.
func (service *Impl) Fetch(ctx context.Context, url string) ([]entities.FeedItem, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}

	feed, err := service.readFeed(ctx, EncodeURI(url))
	if err != nil {
		return nil, err
	}

	items := make([]entities.FeedItem, 0, len(feed.Items))
	for _, feedItem := range feed.Items {
		if feedItem == nil {
			continue
		}
		items = append(items, entities.FeedItem{
			Link:  strings.TrimSpace(feedItem.Link),
			Title: strings.TrimSpace(feedItem.Title),
		})
	}

	return items, nil
}

func (service *Impl) readFeed(ctx context.Context, url string) (*gofeed.Feed, error) {
	if service.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, service.timeout)
		defer cancel()
	}

	feed, err := service.feedParser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", url, err)
	}

	return feed, nil
}

const upperHex = "0123456789ABCDEF"

// EncodeURI percent-encodes every byte outside the URI character set, so
// non-ASCII path segments survive the request. Existing %XX escapes are
// kept as is.
func EncodeURI(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '%' && i+2 < len(raw) && isHex(raw[i+1]) && isHex(raw[i+2]):
			sb.WriteByte(c)
		case isURIChar(c):
			sb.WriteByte(c)
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&0x0F])
		}
	}

	return sb.String()
}

func isURIChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(";,/?:@&=+$-_.!~*'()#", c) >= 0
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}
