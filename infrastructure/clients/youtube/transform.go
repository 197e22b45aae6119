package youtube

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rathernotsay21/betirement-sub000/domain/model"

	"github.com/sosodev/duration"
	"google.golang.org/api/youtube/v3"
)

// videoListResponse is the videos.list body. It is decoded locally instead of
// into youtube.VideoListResponse because the generated statistics fields are
// ",string" uint64s and reject empty or malformed counts.
type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID             string               `json:"id"`
	Snippet        *videoSnippet        `json:"snippet"`
	ContentDetails *videoContentDetails `json:"contentDetails"`
	Statistics     *videoStatistics     `json:"statistics"`
}

type videoSnippet struct {
	PublishedAt string                    `json:"publishedAt"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Thumbnails  *youtube.ThumbnailDetails `json:"thumbnails"`
	Tags        []string                  `json:"tags"`
}

type videoContentDetails struct {
	Duration string `json:"duration"`
}

type videoStatistics struct {
	ViewCount countString `json:"viewCount"`
	LikeCount countString `json:"likeCount"`
}

// countString accepts both "123" and 123
type countString string

func (c *countString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = countString(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}
	*c = countString(b)
	return nil
}

// categoryRules are checked in order, first match wins
var categoryRules = []struct {
	category model.Category
	keywords []string
}{
	{model.CategoryFundamentals, []string{"fundamentals", "basics"}},
	{model.CategoryRetirementPlanning, []string{"retirement", "retire"}},
	{model.CategoryInvestmentStrategies, []string{"investment", "strategy"}},
	{model.CategoryMarketAnalysis, []string{"market", "analysis"}},
	{model.CategorySuccessStories, []string{"success", "story"}},
	{model.CategoryBookClub, []string{"book", "reading"}},
}

// InferCategory is a best-effort classifier over free-text tags. It only
// substring-matches keywords and is not authoritative; unmatched tags fall
// back to fundamentals.
func InferCategory(tags []string) model.Category {
	text := strings.ToLower(strings.Join(tags, " "))
	if text == "" {
		return model.CategoryFundamentals
	}
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return model.CategoryFundamentals
}

// FormatDuration turns an ISO 8601 duration (PT#H#M#S) into H:MM:SS, or M:SS
// when under an hour. Empty or unparseable input yields "0:00".
func FormatDuration(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return "0:00"
	}
	d, err := duration.Parse(iso)
	if err != nil || d.Negative {
		return "0:00"
	}
	total := int64(d.ToTimeDuration().Round(time.Second) / time.Second)
	if total <= 0 {
		return "0:00"
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// ParseCount parses a provider count; missing, negative or non-numeric values become 0
func ParseCount(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// convertToVideo converts a videos.list item into our model with best-effort defaults
func convertToVideo(item videoItem) model.Video {
	video := model.Video{
		ID:         item.ID,
		ProviderID: item.ID,
		Duration:   "0:00",
		Category:   model.CategoryFundamentals,
		Tags:       []string{},
	}

	if s := item.Snippet; s != nil {
		video.Title = s.Title
		video.Description = s.Description
		video.PublishedAt = s.PublishedAt
		if len(s.Tags) > 0 {
			video.Tags = append([]string(nil), s.Tags...)
		}
		video.Category = InferCategory(s.Tags)
		// Resolutions the provider omits stay empty
		if s.Thumbnails != nil {
			if s.Thumbnails.Default != nil {
				video.Thumbnail.Default = s.Thumbnails.Default.Url
			}
			if s.Thumbnails.Medium != nil {
				video.Thumbnail.Medium = s.Thumbnails.Medium.Url
			}
			if s.Thumbnails.High != nil {
				video.Thumbnail.High = s.Thumbnails.High.Url
			}
		}
	}

	if item.ContentDetails != nil {
		video.Duration = FormatDuration(item.ContentDetails.Duration)
	}

	if item.Statistics != nil {
		video.ViewCount = ParseCount(string(item.Statistics.ViewCount))
		video.LikeCount = ParseCount(string(item.Statistics.LikeCount))
	}

	return video
}
