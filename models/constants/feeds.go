package constants

func GetStaticFeedURLs() []string {
	var urls []string
	urls = append(urls, "https://blog.nove-b.dev/index.xml")
	urls = append(urls, "https://user-first.ikyu.co.jp/rss")
	urls = append(urls, "https://b.hatena.ne.jp/hotentry/it.rss")
	urls = append(urls, "https://2week.net/feed/")
	urls = append(urls, "https://www.youtube.com/feeds/videos.xml?channel_id=UCzmxo1Zj4KkM32FlObFWdeA")
	urls = append(urls, "https://zenn.dev/topics/go/feed")
	urls = append(urls, "https://zenn.dev/topics/typescript/feed")
	urls = append(urls, "https://zenn.dev/topics/reactnative/feed")
	urls = append(urls, "https://zenn.dev/topics/nextjs/feed")
	urls = append(urls, "https://zenn.dev/topics/個人開発/feed")
	urls = append(urls, "https://www.its-kenpo.or.jp/NEWS/rss.xml")
	return urls
}
