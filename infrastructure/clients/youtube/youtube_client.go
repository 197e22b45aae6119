package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/domain/repository"

	"github.com/google/go-querystring/query"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// DefaultEndpoint is the YouTube Data API root; resources live under youtube/v3/
const DefaultEndpoint = "https://youtube.googleapis.com/"

// maxPageSize is the largest maxResults the API accepts
const maxPageSize = 50

// Client talks to the YouTube Data API v3 with an API key
type Client struct {
	service    *youtube.Service
	httpClient *http.Client
	endpoint   string
	apiKey     string
	timeout    time.Duration
}

// Config represents YouTube API configuration
type Config struct {
	APIKey string
	// Endpoint overrides DefaultEndpoint, mostly for tests
	Endpoint string
	Timeout  time.Duration
}

type videosQuery struct {
	Key  string `url:"key"`
	Part string `url:"part"`
	ID   string `url:"id"`
}

// NewYouTubeClient creates a new YouTube API client in API key mode (read-only)
func NewYouTubeClient(ctx context.Context, config *Config) (repository.IVideoProvider, error) {
	endpoint := strings.TrimRight(config.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	} else {
		endpoint += "/"
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	return &Client{
		service:    service,
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		apiKey:     config.APIKey,
		timeout:    timeout,
	}, nil
}

// SearchVideoIDs runs search.list and returns the video ids in the order the API ranked them
func (c *Client) SearchVideoIDs(ctx context.Context, params repository.SearchParams) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	call := c.service.Search.List([]string{"id"}).
		Type("video").
		MaxResults(clampPageSize(params.MaxResults))
	if params.ChannelID != "" {
		call = call.ChannelId(params.ChannelID)
	}
	if params.Query != "" {
		call = call.Q(params.Query)
	}
	if params.Order != "" {
		call = call.Order(params.Order)
	}

	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", mapError(err))
	}

	videoIDs := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		videoIDs = append(videoIDs, item.Id.VideoId)
	}
	return videoIDs, nil
}

// PlaylistVideoIDs runs playlistItems.list and returns the video ids in playlist order
func (c *Client) PlaylistVideoIDs(ctx context.Context, playlistID string, maxResults int64) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(clampPageSize(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist items: %w", mapError(err))
	}

	videoIDs := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil || item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		videoIDs = append(videoIDs, item.ContentDetails.VideoId)
	}
	return videoIDs, nil
}

// VideosByID runs videos.list for the comma-joined ids and converts each item.
// The result follows the order of ids; ids the API did not return are skipped.
// The body is decoded locally, see videoListResponse.
func (c *Client) VideosByID(ctx context.Context, ids []string) ([]model.Video, error) {
	if len(ids) == 0 {
		return []model.Video{}, nil
	}
	q := videosQuery{
		Key:  c.apiKey,
		Part: "snippet,contentDetails,statistics",
		ID:   strings.Join(ids, ","),
	}

	var response videoListResponse
	if err := c.get(ctx, "youtube/v3/videos", q, &response); err != nil {
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}

	byID := make(map[string]model.Video, len(response.Items))
	for _, item := range response.Items {
		if item.ID == "" {
			continue
		}
		byID[item.ID] = convertToVideo(item)
	}

	videos := make([]model.Video, 0, len(byID))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			videos = append(videos, v)
			delete(byID, id)
		}
	}
	return videos, nil
}

// get issues one GET request and decodes the JSON body into out
func (c *Client) get(ctx context.Context, resource string, params interface{}, out interface{}) error {
	values, err := query.Values(params)
	if err != nil {
		return fmt.Errorf("encode %s query: %w", resource, err)
	}
	endpoint := googleapi.ResolveRelative(c.endpoint, resource) + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", resource, redactKey(err))
	}
	defer res.Body.Close()

	if err := googleapi.CheckResponse(res); err != nil {
		return mapError(err)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}

// mapError turns an API 404 into ErrNotFound and strips the key from transport errors
func mapError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %s", repository.ErrNotFound, apiErr.Message)
	}
	return redactKey(err)
}

// redactKey strips the query string from url errors so the API key is never logged
func redactKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
			u.RawQuery = ""
			return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
		}
	}
	return err
}

func clampPageSize(n int64) int64 {
	if n <= 0 || n > maxPageSize {
		return maxPageSize
	}
	return n
}
