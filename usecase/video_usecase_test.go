package usecase

import (
	"context"
	"testing"

	"github.com/rathernotsay21/betirement-sub000/domain/dto"
	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockVideoDataClient is a mock implementation of IVideoDataClient
type MockVideoDataClient struct {
	mock.Mock
}

func (m *MockVideoDataClient) ListChannelVideos(ctx context.Context, maxResults int64) dto.VideoListResult {
	args := m.Called(ctx, maxResults)
	return args.Get(0).(dto.VideoListResult)
}

func (m *MockVideoDataClient) GetVideoByID(ctx context.Context, id string) dto.VideoResult {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.VideoResult)
}

func (m *MockVideoDataClient) ListPlaylistVideos(ctx context.Context, playlistID string, maxResults int64) dto.VideoListResult {
	args := m.Called(ctx, playlistID, maxResults)
	return args.Get(0).(dto.VideoListResult)
}

func (m *MockVideoDataClient) SearchVideos(ctx context.Context, query string, maxResults int64) dto.VideoListResult {
	args := m.Called(ctx, query, maxResults)
	return args.Get(0).(dto.VideoListResult)
}

func (m *MockVideoDataClient) ClearCache(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func videoIDs(videos []model.Video) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.ID)
	}
	return out
}

func TestFallbackVideos(t *testing.T) {
	videos := FallbackVideos()
	require.NotEmpty(t, videos)

	seen := map[model.Category]bool{}
	for i, v := range videos {
		assert.NotEmpty(t, v.ID)
		assert.Equal(t, v.ID, v.ProviderID)
		assert.NotEmpty(t, v.Title)
		assert.NotEmpty(t, v.Thumbnail.High)
		assert.NotNil(t, v.Tags)
		_, ok := model.ParseCategory(string(v.Category))
		assert.True(t, ok, v.ID)
		seen[v.Category] = true
		if i > 0 {
			assert.GreaterOrEqual(t, videos[i-1].PublishedAt, v.PublishedAt)
		}
	}
	assert.Len(t, seen, len(model.Categories))

	// callers get a copy
	videos[0].Tags[0] = "changed"
	assert.NotEqual(t, "changed", FallbackVideos()[0].Tags[0])
}

func TestVideoUseCase_LatestVideos(t *testing.T) {
	t.Run("network_result", func(t *testing.T) {
		client := new(MockVideoDataClient)
		uc := NewVideoUseCase(client)
		live := []model.Video{video("live", "2024-07-01T00:00:00Z")}
		client.On("ListChannelVideos", mock.Anything, int64(6)).Return(dto.Fresh(live)).Once()

		res := uc.LatestVideos(context.Background(), 6, "")
		assert.Equal(t, dto.SourceNetwork, res.Source)
		assert.Equal(t, live, res.Data)
		client.AssertExpectations(t)
	})

	t.Run("empty_uses_fallback", func(t *testing.T) {
		client := new(MockVideoDataClient)
		uc := NewVideoUseCase(client)
		client.On("ListChannelVideos", mock.Anything, int64(3)).Return(emptyList(repository.ErrNotConfigured)).Once()

		res := uc.LatestVideos(context.Background(), 3, "")
		assert.Equal(t, dto.SourceFallback, res.Source)
		assert.Len(t, res.Data, 3)
		assert.Equal(t, FallbackVideos()[0].ID, res.Data[0].ID)
		assert.ErrorIs(t, res.Err, repository.ErrNotConfigured)
	})

	t.Run("category_filter", func(t *testing.T) {
		client := new(MockVideoDataClient)
		uc := NewVideoUseCase(client)
		book := video("book", "2024-07-01T00:00:00Z")
		book.Category = model.CategoryBookClub
		client.On("ListChannelVideos", mock.Anything, int64(25)).Return(dto.Cached([]model.Video{
			video("basics", "2024-07-02T00:00:00Z"), book,
		})).Once()

		res := uc.LatestVideos(context.Background(), 0, model.CategoryBookClub)
		assert.Equal(t, dto.SourceCache, res.Source)
		assert.Equal(t, []string{"book"}, videoIDs(res.Data))
	})

	t.Run("category_without_live_match_stays_live", func(t *testing.T) {
		client := new(MockVideoDataClient)
		uc := NewVideoUseCase(client)
		client.On("ListChannelVideos", mock.Anything, int64(25)).Return(dto.Fresh([]model.Video{
			video("basics", "2024-07-02T00:00:00Z"),
		})).Once()

		res := uc.LatestVideos(context.Background(), 0, model.CategoryMarketAnalysis)
		assert.Equal(t, dto.SourceNetwork, res.Source)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	})

	t.Run("category_on_empty_client_uses_fallback", func(t *testing.T) {
		client := new(MockVideoDataClient)
		uc := NewVideoUseCase(client)
		client.On("ListChannelVideos", mock.Anything, int64(25)).Return(emptyList(nil)).Once()

		res := uc.LatestVideos(context.Background(), 0, model.CategoryMarketAnalysis)
		assert.Equal(t, dto.SourceFallback, res.Source)
		require.NotEmpty(t, res.Data)
		for _, v := range res.Data {
			assert.Equal(t, model.CategoryMarketAnalysis, v.Category)
		}
	})
}

func TestVideoUseCase_Video(t *testing.T) {
	client := new(MockVideoDataClient)
	uc := NewVideoUseCase(client)

	live := video("live", "2024-07-01T00:00:00Z")
	client.On("GetVideoByID", mock.Anything, "live").Return(dto.VideoResult{Data: &live, Source: dto.SourceNetwork}).Once()
	client.On("GetVideoByID", mock.Anything, "bitcoin-basics-101").Return(dto.Empty[*model.Video](repository.ErrRateLimited)).Once()
	client.On("GetVideoByID", mock.Anything, "nope").Return(dto.Empty[*model.Video](repository.ErrNotFound)).Once()

	res := uc.Video(context.Background(), "live")
	require.NotNil(t, res.Data)
	assert.Equal(t, "live", res.Data.ID)

	res = uc.Video(context.Background(), "bitcoin-basics-101")
	require.NotNil(t, res.Data)
	assert.Equal(t, dto.SourceFallback, res.Source)

	res = uc.Video(context.Background(), "nope")
	assert.Nil(t, res.Data)
	assert.ErrorIs(t, res.Err, repository.ErrNotFound)
}

func TestVideoUseCase_Search(t *testing.T) {
	t.Run("blank_query", func(t *testing.T) {
		client := new(MockVideoDataClient)
		uc := NewVideoUseCase(client)

		res := uc.Search(context.Background(), " ", 5)
		assert.Empty(t, res.Data)
		client.AssertNotCalled(t, "SearchVideos", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fallback_matches_locally", func(t *testing.T) {
		client := new(MockVideoDataClient)
		uc := NewVideoUseCase(client)
		client.On("SearchVideos", mock.Anything, "cold storage", int64(25)).Return(emptyList(nil)).Once()

		res := uc.Search(context.Background(), "cold storage", 0)
		assert.Equal(t, dto.SourceFallback, res.Source)
		assert.Equal(t, []string{"cold-storage-setup"}, videoIDs(res.Data))
	})

	t.Run("no_match_anywhere", func(t *testing.T) {
		client := new(MockVideoDataClient)
		uc := NewVideoUseCase(client)
		client.On("SearchVideos", mock.Anything, "lightning channels", int64(5)).Return(emptyList(nil)).Once()

		res := uc.Search(context.Background(), "lightning channels", 5)
		assert.Equal(t, dto.SourceEmpty, res.Source)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	})
}

func TestVideoUseCase_RelatedVideos(t *testing.T) {
	client := new(MockVideoDataClient)
	uc := NewVideoUseCase(client)

	client.On("GetVideoByID", mock.Anything, "retire-early-roadmap").Return(dto.Empty[*model.Video](nil)).Once()
	client.On("ListChannelVideos", mock.Anything, int64(MaxResultsLimit)).Return(emptyList(nil)).Once()

	res := uc.RelatedVideos(context.Background(), "retire-early-roadmap", 0)
	assert.Equal(t, dto.SourceFallback, res.Source)
	assert.Equal(t, []string{"four-percent-rule-bitcoin"}, videoIDs(res.Data))
	client.AssertExpectations(t)
}

func TestVideoUseCase_RelatedVideos_UnknownVideo(t *testing.T) {
	client := new(MockVideoDataClient)
	uc := NewVideoUseCase(client)
	client.On("GetVideoByID", mock.Anything, "nope").Return(dto.Empty[*model.Video](repository.ErrNotFound)).Once()

	res := uc.RelatedVideos(context.Background(), "nope", 3)
	assert.Empty(t, res.Data)
	client.AssertNotCalled(t, "ListChannelVideos", mock.Anything, mock.Anything)
}

func TestVideoUseCase_PlaylistAndClear(t *testing.T) {
	client := new(MockVideoDataClient)
	uc := NewVideoUseCase(client)

	client.On("ListPlaylistVideos", mock.Anything, "PL1", int64(10)).Return(emptyList(nil)).Once()
	client.On("ClearCache", mock.Anything).Return(nil).Once()

	res := uc.PlaylistVideos(context.Background(), "PL1", 10)
	assert.Equal(t, dto.SourceEmpty, res.Source)
	require.NoError(t, uc.ClearCache(context.Background()))
	client.AssertExpectations(t)
}
