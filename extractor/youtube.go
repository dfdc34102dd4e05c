package extractor

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"tubeseo/cache"
	"tubeseo/config"
	"tubeseo/types"
)

// Service extracts video metadata and transcripts. A zero API key means the
// watch-page scrape is the only metadata source; a nil cache disables caching.
type Service struct {
	client    *http.Client
	apiKey    string
	cache     *cache.Cache
	watchBase string
}

// NewService builds an extractor. apiKey is the optional YouTube Data API key.
func NewService(apiKey string, c *cache.Cache) *Service {
	return &Service{
		client:    &http.Client{Timeout: config.ExtractTimeout},
		apiKey:    apiKey,
		cache:     c,
		watchBase: "https://www.youtube.com",
	}
}

// Fetch resolves the URL to a platform and returns VideoMetadata. Transcript
// retrieval fails soft: the returned metadata has TranscriptPresent=false and
// no error when captions cannot be fetched.
func (s *Service) Fetch(ctx context.Context, rawURL string) (*types.VideoMetadata, error) {
	platform := DetectPlatform(rawURL)
	if platform != types.PlatformYouTube {
		return s.fetchGeneric(rawURL, platform)
	}

	videoID, err := ParseVideoID(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid YouTube URL: %w", err)
	}

	if s.cache != nil {
		if meta, ok := s.cache.GetMetadata(ctx, videoID); ok {
			log.Printf("extractor: cache hit for %s", videoID)
			return meta, nil
		}
	}

	meta := &types.VideoMetadata{
		ID:           videoID,
		Title:        fmt.Sprintf("YouTube Video (%s)", videoID),
		Platform:     types.PlatformYouTube,
		ThumbnailURL: fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID),
		FetchedAt:    time.Now(),
	}

	watchHTML, watchErr := s.fetchWatchPage(ctx, videoID)

	// Prefer the Data API when a key is configured; the scrape is the fallback.
	if s.apiKey != "" {
		if err := s.fillFromDataAPI(ctx, meta); err != nil {
			log.Printf("extractor: Data API lookup failed for %s: %v (falling back to scrape)", videoID, err)
			if watchErr == nil {
				fillFromWatchPage(meta, watchHTML)
			}
		}
	} else if watchErr == nil {
		fillFromWatchPage(meta, watchHTML)
	} else {
		log.Printf("extractor: watch page fetch failed for %s: %v (metadata defaults kept)", videoID, watchErr)
	}

	if watchErr == nil {
		if text, ok := s.fetchTranscript(ctx, watchHTML); ok {
			meta.Transcript = text
			meta.TranscriptPresent = true
		}
	}
	if !meta.TranscriptPresent {
		log.Printf("extractor: no transcript for %s, continuing with metadata only", videoID)
	}

	if s.cache != nil {
		s.cache.SetMetadata(ctx, meta)
	}
	return meta, nil
}

func (s *Service) fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	url := fmt.Sprintf("%s/watch?v=%s", s.watchBase, videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept-Language", "en-US,en")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("watch page returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Watch-page scrape patterns, the same fields the original UI surfaced.
var (
	ogTitleRe       = regexp.MustCompile(`<meta property="og:title" content="([^"]+)"`)
	ogDescriptionRe = regexp.MustCompile(`<meta property="og:description" content="([^"]+)"`)
	authorRe        = regexp.MustCompile(`<link itemprop="name" content="([^"]+)"`)
	lengthSecondsRe = regexp.MustCompile(`"lengthSeconds":"(\d+)"`)
	viewCountRe     = regexp.MustCompile(`"viewCount":"(\d+)"`)
)

func fillFromWatchPage(meta *types.VideoMetadata, html string) {
	if m := ogTitleRe.FindStringSubmatch(html); m != nil {
		meta.Title = m[1]
	}
	if m := ogDescriptionRe.FindStringSubmatch(html); m != nil {
		meta.Description = m[1]
	}
	if m := authorRe.FindStringSubmatch(html); m != nil {
		meta.Author = m[1]
	}
	if m := lengthSecondsRe.FindStringSubmatch(html); m != nil {
		if secs, err := strconv.Atoi(m[1]); err == nil {
			meta.DurationSeconds = secs
		}
	}
	if m := viewCountRe.FindStringSubmatch(html); m != nil {
		if views, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			meta.Views = views
		}
	}
}

func (s *Service) fillFromDataAPI(ctx context.Context, meta *types.VideoMetadata) error {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return fmt.Errorf("youtube service init: %w", err)
	}

	resp, err := svc.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(meta.ID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("videos.list: %w", err)
	}
	if len(resp.Items) == 0 {
		return fmt.Errorf("video %s not found", meta.ID)
	}

	item := resp.Items[0]
	if item.Snippet != nil {
		meta.Title = item.Snippet.Title
		meta.Description = item.Snippet.Description
		meta.Author = item.Snippet.ChannelTitle
	}
	if item.ContentDetails != nil {
		if secs, err := ParseISODuration(item.ContentDetails.Duration); err == nil {
			meta.DurationSeconds = secs
		}
	}
	if item.Statistics != nil {
		meta.Views = int64(item.Statistics.ViewCount)
	}
	return nil
}

var isoDurationRe = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration converts the Data API's ISO-8601 duration (e.g. PT1H2M3S)
// into whole seconds.
func ParseISODuration(d string) (int, error) {
	if d == "" {
		return 0, fmt.Errorf("empty duration")
	}
	m := isoDurationRe.FindStringSubmatch(strings.ToUpper(d))
	if m == nil {
		return 0, fmt.Errorf("unrecognized duration %q", d)
	}
	total := 0
	for i, mult := range []int{86400, 3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, err
		}
		total += n * mult
	}
	return total, nil
}
