package youtube

import (
	"encoding/json"
	"testing"

	"github.com/rathernotsay21/betirement-sub000/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT5M9S", "5:09"},
		{"PT45S", "0:45"},
		{"PT2H", "2:00:00"},
		{"PT10M", "10:00"},
		{"PT0S", "0:00"},
		{"", "0:00"},
		{"not-a-duration", "0:00"},
		{"5:09", "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want model.Category
	}{
		{"basics", []string{"Bitcoin", "Basics"}, model.CategoryFundamentals},
		{"retirement", []string{"My Retirement Plan"}, model.CategoryRetirementPlanning},
		{"investment", []string{"DCA Strategy"}, model.CategoryInvestmentStrategies},
		{"market", []string{"Weekly Market Update"}, model.CategoryMarketAnalysis},
		{"success", []string{"Listener Story"}, model.CategorySuccessStories},
		{"book", []string{"The Bitcoin Standard", "Book Review"}, model.CategoryBookClub},
		{"first_rule_wins", []string{"retirement", "basics"}, model.CategoryFundamentals},
		{"no_match", []string{"Bitcoin", "Lightning"}, model.CategoryFundamentals},
		{"no_tags", nil, model.CategoryFundamentals},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCategory(tt.tags))
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, int64(1500), ParseCount("1500"))
	assert.Equal(t, int64(0), ParseCount(""))
	assert.Equal(t, int64(0), ParseCount("n/a"))
	assert.Equal(t, int64(0), ParseCount("-5"))
	assert.Equal(t, int64(7), ParseCount(" 7 "))
}

func TestConvertToVideo_Defaults(t *testing.T) {
	v := convertToVideo(videoItem{ID: "bare"})

	assert.Equal(t, "bare", v.ID)
	assert.Equal(t, "bare", v.ProviderID)
	assert.Equal(t, "0:00", v.Duration)
	assert.Equal(t, model.CategoryFundamentals, v.Category)
	assert.NotNil(t, v.Tags)
	assert.Zero(t, v.ViewCount)
	assert.Zero(t, v.LikeCount)
}

func TestVideoStatistics_Decode(t *testing.T) {
	var stats videoStatistics
	require.NoError(t, json.Unmarshal([]byte(`{"viewCount":"1500","likeCount":""}`), &stats))
	assert.Equal(t, int64(1500), ParseCount(string(stats.ViewCount)))
	assert.Equal(t, int64(0), ParseCount(string(stats.LikeCount)))

	require.NoError(t, json.Unmarshal([]byte(`{"viewCount":12,"likeCount":null}`), &stats))
	assert.Equal(t, int64(12), ParseCount(string(stats.ViewCount)))
	assert.Equal(t, int64(0), ParseCount(string(stats.LikeCount)))
}
