package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rathernotsay21/betirement-sub000/domain/dto"
	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/domain/repository"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/cache"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/logger"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/ratelimit"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/utils"
)

const (
	DefaultCacheTTL       = time.Hour
	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxResults     = 25
	MaxResultsLimit       = 50
)

// IVideoDataClient fetches channel videos through the cache and the rate limiter.
// Fetches never fail; failures resolve to stale or empty results.
type IVideoDataClient interface {
	ListChannelVideos(ctx context.Context, maxResults int64) dto.VideoListResult
	GetVideoByID(ctx context.Context, id string) dto.VideoResult
	ListPlaylistVideos(ctx context.Context, playlistID string, maxResults int64) dto.VideoListResult
	SearchVideos(ctx context.Context, query string, maxResults int64) dto.VideoListResult
	ClearCache(ctx context.Context) error
}

// VideoClientOptions configures a VideoDataClient. Zero values take defaults.
type VideoClientOptions struct {
	APIKey         string
	ChannelID      string
	Provider       repository.IVideoProvider
	Cache          repository.ICacheStore[[]model.Video]
	Limiter        repository.IRateLimiter
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	Clock          utils.Clock
	Getenv         func(string) string
}

// VideoDataClient implements IVideoDataClient
type VideoDataClient struct {
	apiKey         string
	channelID      string
	provider       repository.IVideoProvider
	cache          repository.ICacheStore[[]model.Video]
	limiter        repository.IRateLimiter
	cacheTTL       time.Duration
	requestTimeout time.Duration
	clock          utils.Clock
	getenv         func(string) string
	configured     bool
}

// NewVideoDataClient creates a client. Missing credentials are logged once and
// every fetch then returns an empty result.
func NewVideoDataClient(opts VideoClientOptions) *VideoDataClient {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	c := &VideoDataClient{
		apiKey:         strings.TrimSpace(opts.APIKey),
		channelID:      strings.TrimSpace(opts.ChannelID),
		provider:       opts.Provider,
		cache:          opts.Cache,
		limiter:        opts.Limiter,
		cacheTTL:       opts.CacheTTL,
		requestTimeout: opts.RequestTimeout,
		clock:          utils.ClockOrDefault(opts.Clock),
		getenv:         getenv,
	}
	if c.apiKey == "" {
		c.apiKey = strings.TrimSpace(getenv("YOUTUBE_API_KEY"))
	}
	if c.channelID == "" {
		c.channelID = strings.TrimSpace(getenv("YOUTUBE_CHANNEL_ID"))
	}
	if c.cache == nil {
		c.cache = cache.NewMemoryStore[[]model.Video]()
	}
	if c.limiter == nil {
		c.limiter = ratelimit.NewFixedWindow(ratelimit.DefaultMaxRequests, ratelimit.DefaultWindow, c.clock)
	}
	if c.cacheTTL <= 0 {
		c.cacheTTL = DefaultCacheTTL
	}
	if c.requestTimeout <= 0 {
		c.requestTimeout = DefaultRequestTimeout
	}

	c.configured = c.apiKey != "" && c.channelID != "" && c.provider != nil
	if !c.configured {
		logger.GetLogger().WithFields(map[string]interface{}{
			"has_api_key":    c.apiKey != "",
			"has_channel_id": c.channelID != "",
			"has_provider":   c.provider != nil,
		}).Warn("YouTube client not configured, video fetches will return empty results")
	}
	return c
}

// ListChannelVideos returns the newest channel uploads, newest first
func (c *VideoDataClient) ListChannelVideos(ctx context.Context, maxResults int64) dto.VideoListResult {
	maxResults = normalizeMaxResults(maxResults)
	key := fmt.Sprintf("channel-videos:%s:%d", c.channelID, maxResults)

	return c.fetchList(ctx, key, func(ctx context.Context) ([]model.Video, error) {
		ids, err := c.searchIDs(ctx, repository.SearchParams{
			ChannelID:  c.channelID,
			Order:      "date",
			MaxResults: maxResults,
		})
		if err != nil || len(ids) == 0 {
			return nil, err
		}
		videos, err := c.videosByID(ctx, ids)
		if err != nil {
			return nil, err
		}
		sortNewestFirst(videos)
		if int64(len(videos)) > maxResults {
			videos = videos[:maxResults]
		}
		return videos, nil
	})
}

// GetVideoByID returns one video, or nil Data when it is unknown or unavailable
func (c *VideoDataClient) GetVideoByID(ctx context.Context, id string) dto.VideoResult {
	id = strings.TrimSpace(id)
	if id == "" {
		return dto.Empty[*model.Video](nil)
	}

	res := c.fetchList(ctx, "video:"+id, func(ctx context.Context) ([]model.Video, error) {
		videos, err := c.videosByID(ctx, []string{id})
		if err != nil {
			return nil, err
		}
		if len(videos) == 0 {
			return nil, fmt.Errorf("%w: video %s", repository.ErrNotFound, id)
		}
		return videos[:1], nil
	})

	if len(res.Data) == 0 {
		return dto.VideoResult{Source: dto.SourceEmpty, Err: res.Err}
	}
	video := res.Data[0]
	return dto.VideoResult{Data: &video, Source: res.Source, Err: res.Err}
}

// ListPlaylistVideos returns playlist videos in playlist order
func (c *VideoDataClient) ListPlaylistVideos(ctx context.Context, playlistID string, maxResults int64) dto.VideoListResult {
	playlistID = strings.TrimSpace(playlistID)
	if playlistID == "" {
		return emptyList(nil)
	}
	maxResults = normalizeMaxResults(maxResults)
	key := fmt.Sprintf("playlist-videos:%s:%d", playlistID, maxResults)

	return c.fetchList(ctx, key, func(ctx context.Context) ([]model.Video, error) {
		ids, err := c.playlistIDs(ctx, playlistID, maxResults)
		if err != nil || len(ids) == 0 {
			return nil, err
		}
		return c.videosByID(ctx, ids)
	})
}

// SearchVideos searches the channel and returns videos in relevance order
func (c *VideoDataClient) SearchVideos(ctx context.Context, query string, maxResults int64) dto.VideoListResult {
	terms := strings.Join(strings.Fields(query), " ")
	if terms == "" {
		return emptyList(nil)
	}
	maxResults = normalizeMaxResults(maxResults)
	key := fmt.Sprintf("search:%s:%s:%d", c.channelID, strings.ToLower(terms), maxResults)

	return c.fetchList(ctx, key, func(ctx context.Context) ([]model.Video, error) {
		ids, err := c.searchIDs(ctx, repository.SearchParams{
			ChannelID:  c.channelID,
			Query:      terms,
			Order:      "relevance",
			MaxResults: maxResults,
		})
		if err != nil || len(ids) == 0 {
			return nil, err
		}
		return c.videosByID(ctx, ids)
	})
}

// ClearCache drops every cached entry
func (c *VideoDataClient) ClearCache(ctx context.Context) error {
	if err := c.cache.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear video cache: %w", err)
	}
	logger.GetLogger().Info("Video cache cleared")
	return nil
}

// fetchList serves key from a fresh cache entry, or runs fetch and caches a
// non-empty result. When fetch fails the last entry for key is served even if
// expired. Not found and empty results are neither cached nor replaced by
// stale data.
func (c *VideoDataClient) fetchList(ctx context.Context, key string, fetch func(context.Context) ([]model.Video, error)) dto.VideoListResult {
	if c.isBuildContext() {
		return emptyList(repository.ErrBuildContext)
	}
	if !c.configured {
		return emptyList(repository.ErrNotConfigured)
	}

	entry, cached := c.lookup(ctx, key)
	if cached && entry.IsFresh(c.clock(), c.cacheTTL) {
		logger.GetLogger().WithField("key", key).Debug("Video cache hit")
		return dto.Cached(entry.Data)
	}

	videos, err := fetch(ctx)
	if err != nil {
		log := logger.GetLogger().WithField("key", key).WithField("error", err)
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("Video resource not found")
			return emptyList(err)
		}
		if cached {
			log.Warn("Video fetch failed, serving stale cache entry")
			return dto.Stale(entry.Data, err)
		}
		log.Warn("Video fetch failed, no cache entry available")
		return emptyList(err)
	}
	if len(videos) == 0 {
		return emptyList(nil)
	}

	if err := c.cache.Set(ctx, key, model.NewCacheEntry(videos, c.clock())); err != nil {
		logger.GetLogger().WithField("key", key).WithField("error", err).Warn("Failed to store videos in cache")
	}
	return dto.Fresh(videos)
}

func (c *VideoDataClient) lookup(ctx context.Context, key string) (model.CacheEntry[[]model.Video], bool) {
	entry, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		logger.GetLogger().WithField("key", key).WithField("error", err).Warn("Video cache lookup failed")
		return entry, false
	}
	return entry, ok
}

func (c *VideoDataClient) searchIDs(ctx context.Context, params repository.SearchParams) ([]string, error) {
	return callProvider(ctx, c, func(ctx context.Context) ([]string, error) {
		return c.provider.SearchVideoIDs(ctx, params)
	})
}

func (c *VideoDataClient) playlistIDs(ctx context.Context, playlistID string, maxResults int64) ([]string, error) {
	return callProvider(ctx, c, func(ctx context.Context) ([]string, error) {
		return c.provider.PlaylistVideoIDs(ctx, playlistID, maxResults)
	})
}

func (c *VideoDataClient) videosByID(ctx context.Context, ids []string) ([]model.Video, error) {
	return callProvider(ctx, c, func(ctx context.Context) ([]model.Video, error) {
		return c.provider.VideosByID(ctx, ids)
	})
}

// callProvider spends one unit of the request budget and runs call under the request timeout
func callProvider[T any](ctx context.Context, c *VideoDataClient, call func(context.Context) (T, error)) (T, error) {
	var zero T
	allowed, err := c.limiter.Allow(ctx)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", repository.ErrRateLimited, err)
	}
	if !allowed {
		logger.GetLogger().Warn("YouTube rate limit reached, skipping request")
		return zero, repository.ErrRateLimited
	}

	callCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()
	return call(callCtx)
}

// placeholderKeys are API key values that only ever appear in templates
var placeholderKeys = map[string]bool{
	"dummy":    true,
	"changeme": true,
	"test":     true,
	"xxx":      true,
}

// isBuildContext reports whether network access should be skipped because the
// process is a CI job, a static build, or carries a template API key
func (c *VideoDataClient) isBuildContext() bool {
	if utils.IsTruthy(c.getenv("CI")) || utils.IsTruthy(c.getenv("SKIP_YOUTUBE_FETCH")) {
		return true
	}
	if c.getenv("NEXT_PHASE") == "phase-production-build" {
		return true
	}
	return isPlaceholderKey(c.apiKey)
}

func isPlaceholderKey(key string) bool {
	if key == "" {
		return false
	}
	lower := strings.ToLower(key)
	return strings.HasPrefix(lower, "your_") ||
		strings.Contains(lower, "placeholder") ||
		placeholderKeys[lower]
}

func normalizeMaxResults(n int64) int64 {
	if n <= 0 {
		return DefaultMaxResults
	}
	if n > MaxResultsLimit {
		return MaxResultsLimit
	}
	return n
}

// sortNewestFirst orders by publish time; unparseable timestamps go last
func sortNewestFirst(videos []model.Video) {
	slices.SortStableFunc(videos, func(a, b model.Video) int {
		ta, errA := time.Parse(time.RFC3339, a.PublishedAt)
		tb, errB := time.Parse(time.RFC3339, b.PublishedAt)
		switch {
		case errA != nil && errB != nil:
			return 0
		case errA != nil:
			return 1
		case errB != nil:
			return -1
		}
		return tb.Compare(ta)
	})
}

func emptyList(err error) dto.VideoListResult {
	return dto.VideoListResult{Data: []model.Video{}, Source: dto.SourceEmpty, Err: err}
}
