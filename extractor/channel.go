package extractor

import (
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"tubeseo/types"
)

const channelFeedURL = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

// FetchChannelUploads lists a channel's recent uploads from its public Atom
// feed, newest first.
func FetchChannelUploads(channelID string, maxCount int) ([]*types.VideoRef, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(fmt.Sprintf(channelFeedURL, channelID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel feed: %w", err)
	}
	return refsFromFeed(feed, maxCount), nil
}

// refsFromFeed converts feed items into VideoRefs. YouTube feeds carry the
// video ID in the yt:videoId extension; the link is the fallback.
func refsFromFeed(feed *gofeed.Feed, maxCount int) []*types.VideoRef {
	count := len(feed.Items)
	if maxCount > 0 && count > maxCount {
		count = maxCount
	}

	refs := make([]*types.VideoRef, 0, count)
	for i := 0; i < count; i++ {
		item := feed.Items[i]

		id := ""
		if yt, ok := item.Extensions["yt"]; ok {
			if vals, ok := yt["videoId"]; ok && len(vals) > 0 {
				id = vals[0].Value
			}
		}
		if id == "" && item.Link != "" {
			if parsed, err := ParseVideoID(item.Link); err == nil {
				id = parsed
			}
		}
		if id == "" {
			continue
		}

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		author := ""
		if item.Author != nil {
			author = item.Author.Name
		}

		refs = append(refs, &types.VideoRef{
			ID:          id,
			Title:       item.Title,
			URL:         item.Link,
			Author:      author,
			PublishedAt: publishedAt,
		})
	}
	return refs
}
