package usecase

import (
	"context"
	"strings"

	"github.com/rathernotsay21/betirement-sub000/domain/dto"
	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/logger"
)

const defaultRelatedVideos = 3

// IVideoUseCase defines the video operations used by pages
type IVideoUseCase interface {
	// LatestVideos returns the newest videos, optionally restricted to one category
	LatestVideos(ctx context.Context, maxResults int64, category model.Category) dto.VideoListResult
	Video(ctx context.Context, id string) dto.VideoResult
	PlaylistVideos(ctx context.Context, playlistID string, maxResults int64) dto.VideoListResult
	Search(ctx context.Context, query string, maxResults int64) dto.VideoListResult
	// RelatedVideos returns other videos from the same category
	RelatedVideos(ctx context.Context, id string, maxResults int64) dto.VideoListResult
	ClearCache(ctx context.Context) error
}

// VideoUseCase substitutes the local dataset whenever the client comes back empty
type VideoUseCase struct {
	client IVideoDataClient
}

// NewVideoUseCase creates a new video use case instance
func NewVideoUseCase(client IVideoDataClient) IVideoUseCase {
	return &VideoUseCase{client: client}
}

func (u *VideoUseCase) LatestVideos(ctx context.Context, maxResults int64, category model.Category) dto.VideoListResult {
	maxResults = normalizeMaxResults(maxResults)

	res := u.client.ListChannelVideos(ctx, maxResults)
	if len(res.Data) > 0 {
		// a live channel without matches stays live, even if that is empty
		res.Data = filterCategory(res.Data, category)
		return res
	}

	logFallback("latest", res)
	return fallbackResult(limit(filterCategory(FallbackVideos(), category), maxResults), res.Err)
}

func (u *VideoUseCase) Video(ctx context.Context, id string) dto.VideoResult {
	res := u.client.GetVideoByID(ctx, id)
	if res.Data != nil {
		return res
	}

	id = strings.TrimSpace(id)
	for _, v := range FallbackVideos() {
		if v.ID == id {
			logFallback("video", dto.VideoListResult{Source: res.Source, Err: res.Err})
			return dto.VideoResult{Data: &v, Source: dto.SourceFallback, Err: res.Err}
		}
	}
	return res
}

// PlaylistVideos has no local substitute; playlists only exist on YouTube
func (u *VideoUseCase) PlaylistVideos(ctx context.Context, playlistID string, maxResults int64) dto.VideoListResult {
	return u.client.ListPlaylistVideos(ctx, playlistID, maxResults)
}

func (u *VideoUseCase) Search(ctx context.Context, query string, maxResults int64) dto.VideoListResult {
	if strings.TrimSpace(query) == "" {
		return emptyList(nil)
	}
	maxResults = normalizeMaxResults(maxResults)

	res := u.client.SearchVideos(ctx, query, maxResults)
	if len(res.Data) > 0 {
		return res
	}

	logFallback("search", res)
	return fallbackResult(limit(searchLocal(FallbackVideos(), query), maxResults), res.Err)
}

func (u *VideoUseCase) RelatedVideos(ctx context.Context, id string, maxResults int64) dto.VideoListResult {
	if maxResults <= 0 {
		maxResults = defaultRelatedVideos
	}
	current := u.Video(ctx, id)
	if current.Data == nil {
		return emptyList(current.Err)
	}

	candidates := u.LatestVideos(ctx, MaxResultsLimit, current.Data.Category)
	related := make([]model.Video, 0, maxResults)
	for _, v := range candidates.Data {
		if v.ID == current.Data.ID {
			continue
		}
		related = append(related, v)
	}
	candidates.Data = limit(related, maxResults)
	return candidates
}

func (u *VideoUseCase) ClearCache(ctx context.Context) error {
	return u.client.ClearCache(ctx)
}

func filterCategory(videos []model.Video, category model.Category) []model.Video {
	if category == "" {
		return videos
	}
	filtered := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if v.Category == category {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// searchLocal matches every query term against title, description and tags
func searchLocal(videos []model.Video, query string) []model.Video {
	terms := strings.Fields(strings.ToLower(query))
	matched := make([]model.Video, 0)
	for _, v := range videos {
		text := strings.ToLower(v.Title + " " + v.Description + " " + strings.Join(v.Tags, " "))
		hit := true
		for _, term := range terms {
			if !strings.Contains(text, term) {
				hit = false
				break
			}
		}
		if hit {
			matched = append(matched, v)
		}
	}
	return matched
}

func limit(videos []model.Video, n int64) []model.Video {
	if n > 0 && int64(len(videos)) > n {
		return videos[:n]
	}
	return videos
}

func fallbackResult(videos []model.Video, cause error) dto.VideoListResult {
	if len(videos) == 0 {
		return emptyList(cause)
	}
	return dto.VideoListResult{Data: videos, Source: dto.SourceFallback, Err: cause}
}

func logFallback(operation string, res dto.VideoListResult) {
	entry := logger.GetLogger().WithField("operation", operation).WithField("source", res.Source)
	if res.Err != nil {
		entry = entry.WithField("error", res.Err)
	}
	entry.Info("Serving local fallback videos")
}
