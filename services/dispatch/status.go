package dispatch

import (
	"rss-announcer/models/entities"
	"strings"
)

// ComposeStatus renders the announcement for an item:
//
//	<source title>
//	🎉 <item title> 🎉
//	🔗 <item link>
//	#tag1 #tag2
//
// The source title and hashtag lines are only present when non-empty.
func ComposeStatus(source entities.FeedSource, item entities.FeedItem) string {
	lines := make([]string, 0, 4)

	if title := strings.TrimSpace(source.Title); title != "" {
		lines = append(lines, title)
	}

	itemTitle := item.Title
	if itemTitle == "" {
		itemTitle = item.Link
	}
	lines = append(lines, "🎉 "+itemTitle+" 🎉")
	lines = append(lines, "🔗 "+item.Link)

	if hashtags := formatTags(source.Tags); hashtags != "" {
		lines = append(lines, hashtags)
	}

	return strings.Join(lines, "\n")
}

func formatTags(tags []string) string {
	hashtags := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag == "" {
			continue
		}
		hashtags = append(hashtags, "#"+tag)
	}
	return strings.Join(hashtags, " ")
}
