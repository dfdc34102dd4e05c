package extractor

import (
	"testing"

	"github.com/mmcdole/gofeed"
)

const sampleChannelFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns="http://www.w3.org/2005/Atom">
  <title>Uploads by GopherAcademy</title>
  <entry>
    <id>yt:video:dQw4w9WgXcQ</id>
    <yt:videoId>dQw4w9WgXcQ</yt:videoId>
    <title>Go Concurrency Patterns</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=dQw4w9WgXcQ"/>
    <author><name>GopherAcademy</name></author>
    <published>2025-06-01T10:00:00+00:00</published>
  </entry>
  <entry>
    <id>yt:video:abc123def45</id>
    <yt:videoId>abc123def45</yt:videoId>
    <title>Error Handling Deep Dive</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=abc123def45"/>
    <author><name>GopherAcademy</name></author>
    <published>2025-05-20T10:00:00+00:00</published>
  </entry>
  <entry>
    <id>yt:video:zzz999xxx11</id>
    <yt:videoId>zzz999xxx11</yt:videoId>
    <title>Generics in Practice</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=zzz999xxx11"/>
    <author><name>GopherAcademy</name></author>
    <published>2025-05-01T10:00:00+00:00</published>
  </entry>
</feed>`

func TestRefsFromFeed(t *testing.T) {
	feed, err := gofeed.NewParser().ParseString(sampleChannelFeed)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	refs := refsFromFeed(feed, 0)
	if len(refs) != 3 {
		t.Fatalf("got %d refs, want 3", len(refs))
	}

	first := refs[0]
	if first.ID != "dQw4w9WgXcQ" {
		t.Errorf("ID = %q", first.ID)
	}
	if first.Title != "Go Concurrency Patterns" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Author != "GopherAcademy" {
		t.Errorf("Author = %q", first.Author)
	}
	if first.PublishedAt.IsZero() {
		t.Error("PublishedAt not parsed")
	}
}

func TestRefsFromFeedMaxCount(t *testing.T) {
	feed, err := gofeed.NewParser().ParseString(sampleChannelFeed)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	refs := refsFromFeed(feed, 2)
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2", len(refs))
	}
	if refs[1].ID != "abc123def45" {
		t.Errorf("second ref ID = %q", refs[1].ID)
	}
}

func TestRefsFromFeedLinkFallback(t *testing.T) {
	const feedNoExt = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>Plain Entry</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=dQw4w9WgXcQ"/>
  </entry>
  <entry>
    <title>No Video Here</title>
    <link rel="alternate" href="https://example.com/blog/post"/>
  </entry>
</feed>`

	feed, err := gofeed.NewParser().ParseString(feedNoExt)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	refs := refsFromFeed(feed, 0)
	if len(refs) != 1 {
		t.Fatalf("got %d refs, want 1 (entry without a video ID skipped)", len(refs))
	}
	if refs[0].ID != "dQw4w9WgXcQ" {
		t.Errorf("ID = %q", refs[0].ID)
	}
}
