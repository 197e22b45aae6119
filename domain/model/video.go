package model

// Category is the content bucket a video is rendered under
type Category string

const (
	CategoryFundamentals         Category = "fundamentals"
	CategoryRetirementPlanning   Category = "retirement-planning"
	CategoryInvestmentStrategies Category = "investment-strategies"
	CategoryMarketAnalysis       Category = "market-analysis"
	CategorySuccessStories       Category = "success-stories"
	CategoryBookClub             Category = "book-club"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryFundamentals,
	CategoryRetirementPlanning,
	CategoryInvestmentStrategies,
	CategoryMarketAnalysis,
	CategorySuccessStories,
	CategoryBookClub,
}

// ParseCategory validates a raw category value
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// Thumbnail holds the three resolution variants returned by the provider
type Thumbnail struct {
	Default string `json:"default"`
	Medium  string `json:"medium"`
	High    string `json:"high"`
}

// Video is the normalized video record handed to page renderers
type Video struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"providerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   Thumbnail `json:"thumbnail"`
	PublishedAt string    `json:"publishedAt"`
	Duration    string    `json:"duration"`
	Category    Category  `json:"category"`
	Tags        []string  `json:"tags"`
	ViewCount   int64     `json:"viewCount"`
	LikeCount   int64     `json:"likeCount"`
}
