package entities

import "time"

// FeedSource is a feed to poll, rebuilt on every cycle.
type FeedSource struct {
	Title string
	URL   string
	Tags  []string
}

// FeedItem is a single entry read from a feed. An empty Link means the
// feed did not provide one.
type FeedItem struct {
	Link  string
	Title string
}

type AnnouncedLink struct {
	Link      string    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"not null; default:current_timestamp"`
}
