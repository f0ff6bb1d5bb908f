package feeds_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"rss-announcer/models/entities"
	"rss-announcer/services/feeds"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssData = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>Test Item 1</title>
      <link>https://example.com/item1</link>
    </item>
    <item>
      <title>No link</title>
    </item>
    <item>
      <link>https://example.com/item3</link>
    </item>
  </channel>
</rss>`

const atomData = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <entry>
    <title>Atom Entry</title>
    <link href="https://example.com/atom1"/>
    <id>urn:uuid:1</id>
    <updated>2024-01-01T00:00:00Z</updated>
  </entry>
</feed>`

const emptyRSS = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Empty</title></channel></rss>`

func serveFeed(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.UserAgent())
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchRSS(t *testing.T) {
	server := serveFeed(t, rssData)

	items, err := feeds.New("test-agent", time.Second).Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, []entities.FeedItem{
		{Link: "https://example.com/item1", Title: "Test Item 1"},
		{Link: "", Title: "No link"},
		{Link: "https://example.com/item3", Title: ""},
	}, items)
}

func TestFetchAtom(t *testing.T) {
	server := serveFeed(t, atomData)

	items, err := feeds.New("test-agent", time.Second).Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, []entities.FeedItem{{Link: "https://example.com/atom1", Title: "Atom Entry"}}, items)
}

func TestFetchEmptyFeed(t *testing.T) {
	server := serveFeed(t, emptyRSS)

	items, err := feeds.New("test-agent", time.Second).Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetchEncodesMultiByteURL(t *testing.T) {
	var escapedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		escapedPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(emptyRSS))
	}))
	defer server.Close()

	_, err := feeds.New("test-agent", time.Second).Fetch(context.Background(), server.URL+"/topics/個人開発/feed")

	require.NoError(t, err)
	assert.Equal(t, "/topics/"+url.PathEscape("個人開発")+"/feed", escapedPath)
}

func TestFetchErrors(t *testing.T) {
	notFound := httptest.NewServer(http.NotFoundHandler())
	defer notFound.Close()
	garbage := serveFeed(t, "this is not a feed")

	tests := []struct {
		name string
		url  string
	}{
		{name: "empty url", url: ""},
		{name: "not found", url: notFound.URL},
		{name: "not a feed", url: garbage.URL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := feeds.New("test-agent", time.Second).Fetch(context.Background(), tt.url)
			assert.Error(t, err)
			assert.Nil(t, items)
		})
	}
}

func TestEncodeURI(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "plain ascii",
			raw:      "https://zenn.dev/topics/go/feed",
			expected: "https://zenn.dev/topics/go/feed",
		},
		{
			name:     "query kept",
			raw:      "https://www.youtube.com/feeds/videos.xml?channel_id=UCzmxo1Zj4KkM32FlObFWdeA",
			expected: "https://www.youtube.com/feeds/videos.xml?channel_id=UCzmxo1Zj4KkM32FlObFWdeA",
		},
		{
			name:     "multi-byte path",
			raw:      "https://zenn.dev/topics/個人開発/feed",
			expected: "https://zenn.dev/topics/%E5%80%8B%E4%BA%BA%E9%96%8B%E7%99%BA/feed",
		},
		{
			name:     "space and brackets",
			raw:      "https://x/a b[1]",
			expected: "https://x/a%20b%5B1%5D",
		},
		{
			name:     "existing escape kept",
			raw:      "https://x/a%20b",
			expected: "https://x/a%20b",
		},
		{
			name:     "lone percent escaped",
			raw:      "https://x/100%",
			expected: "https://x/100%25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, feeds.EncodeURI(tt.raw))
		})
	}
}
