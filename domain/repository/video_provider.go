package repository

import (
	"context"
	"errors"

	"github.com/rathernotsay21/betirement-sub000/domain/model"
)

var (
	// ErrNotFound is returned when the provider has no such resource
	ErrNotFound = errors.New("video provider: not found")
	// ErrRateLimited is returned when the local request budget is spent
	ErrRateLimited = errors.New("video provider: rate limit exceeded")
	// ErrNotConfigured is returned when the API key or channel id is missing
	ErrNotConfigured = errors.New("video provider: api key or channel id not configured")
	// ErrBuildContext is returned when network access is disabled for a build
	ErrBuildContext = errors.New("video provider: build context, network disabled")
)

// SearchParams describes a search.list call
type SearchParams struct {
	ChannelID  string
	Query      string
	Order      string // date, relevance
	MaxResults int64
}

// IVideoProvider is the video metadata API. Every method issues exactly one HTTP call.
type IVideoProvider interface {
	// SearchVideoIDs returns video ids in provider order
	SearchVideoIDs(ctx context.Context, params SearchParams) ([]string, error)
	// PlaylistVideoIDs returns the video ids of a playlist in playlist order
	PlaylistVideoIDs(ctx context.Context, playlistID string, maxResults int64) ([]string, error)
	// VideosByID hydrates full metadata, ordered like ids. Unknown ids are skipped.
	VideosByID(ctx context.Context, ids []string) ([]model.Video, error)
}
