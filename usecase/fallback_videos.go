package usecase

import "github.com/rathernotsay21/betirement-sub000/domain/model"

// fallbackVideos is rendered whenever the YouTube client has nothing to offer,
// so video pages never show an empty state.
var fallbackVideos = []model.Video{
	{
		ID:          "bitcoin-basics-101",
		ProviderID:  "bitcoin-basics-101",
		Title:       "Bitcoin Basics: What Every Retiree Should Know",
		Description: "A plain-language introduction to Bitcoin, self custody and why it matters for long term savers.",
		Thumbnail:   localThumbnail("bitcoin-basics-101"),
		PublishedAt: "2024-06-03T14:00:00Z",
		Duration:    "12:45",
		Category:    model.CategoryFundamentals,
		Tags:        []string{"bitcoin", "basics", "beginner"},
		ViewCount:   15420,
		LikeCount:   892,
	},
	{
		ID:          "retire-early-roadmap",
		ProviderID:  "retire-early-roadmap",
		Title:       "My Roadmap to Retiring Early with Bitcoin",
		Description: "How we sized a Bitcoin allocation, set a withdrawal plan and picked a target retirement date.",
		Thumbnail:   localThumbnail("retire-early-roadmap"),
		PublishedAt: "2024-05-20T14:00:00Z",
		Duration:    "18:32",
		Category:    model.CategoryRetirementPlanning,
		Tags:        []string{"retirement", "planning", "withdrawal"},
		ViewCount:   23105,
		LikeCount:   1404,
	},
	{
		ID:          "dca-strategy-explained",
		ProviderID:  "dca-strategy-explained",
		Title:       "Dollar Cost Averaging Into Bitcoin, Explained",
		Description: "Why steady buying beats timing the market, with numbers from the last four cycles.",
		Thumbnail:   localThumbnail("dca-strategy-explained"),
		PublishedAt: "2024-05-06T14:00:00Z",
		Duration:    "15:10",
		Category:    model.CategoryInvestmentStrategies,
		Tags:        []string{"dca", "strategy", "investing"},
		ViewCount:   18760,
		LikeCount:   1122,
	},
	{
		ID:          "halving-market-outlook",
		ProviderID:  "halving-market-outlook",
		Title:       "Post-Halving Market Outlook",
		Description: "What previous halvings did to price, volatility and miner economics.",
		Thumbnail:   localThumbnail("halving-market-outlook"),
		PublishedAt: "2024-04-22T14:00:00Z",
		Duration:    "21:04",
		Category:    model.CategoryMarketAnalysis,
		Tags:        []string{"market", "halving", "analysis"},
		ViewCount:   31250,
		LikeCount:   1780,
	},
	{
		ID:          "nurse-retires-at-52",
		ProviderID:  "nurse-retires-at-52",
		Title:       "How a Nurse Retired at 52",
		Description: "A community member walks through the savings plan that let them leave hospital shifts early.",
		Thumbnail:   localThumbnail("nurse-retires-at-52"),
		PublishedAt: "2024-04-08T14:00:00Z",
		Duration:    "24:18",
		Category:    model.CategorySuccessStories,
		Tags:        []string{"success", "story", "community"},
		ViewCount:   12980,
		LikeCount:   965,
	},
	{
		ID:          "bitcoin-standard-review",
		ProviderID:  "bitcoin-standard-review",
		Title:       "Book Club: The Bitcoin Standard",
		Description: "Chapter by chapter notes on sound money, time preference and saving for the long run.",
		Thumbnail:   localThumbnail("bitcoin-standard-review"),
		PublishedAt: "2024-03-25T14:00:00Z",
		Duration:    "1:02:15",
		Category:    model.CategoryBookClub,
		Tags:        []string{"book", "reading", "sound money"},
		ViewCount:   9870,
		LikeCount:   734,
	},
	{
		ID:          "cold-storage-setup",
		ProviderID:  "cold-storage-setup",
		Title:       "Setting Up Cold Storage Step by Step",
		Description: "Hardware wallets, seed phrase backups and the mistakes to avoid when securing savings.",
		Thumbnail:   localThumbnail("cold-storage-setup"),
		PublishedAt: "2024-03-11T14:00:00Z",
		Duration:    "16:47",
		Category:    model.CategoryFundamentals,
		Tags:        []string{"security", "cold storage", "fundamentals"},
		ViewCount:   20415,
		LikeCount:   1310,
	},
	{
		ID:          "four-percent-rule-bitcoin",
		ProviderID:  "four-percent-rule-bitcoin",
		Title:       "Does the 4% Rule Work with Bitcoin?",
		Description: "Stress testing safe withdrawal rates against a volatile asset.",
		Thumbnail:   localThumbnail("four-percent-rule-bitcoin"),
		PublishedAt: "2024-02-26T14:00:00Z",
		Duration:    "19:58",
		Category:    model.CategoryRetirementPlanning,
		Tags:        []string{"retirement", "withdrawal rate"},
		ViewCount:   17644,
		LikeCount:   1008,
	},
}

func localThumbnail(id string) model.Thumbnail {
	base := "/images/videos/" + id
	return model.Thumbnail{
		Default: base + "-default.jpg",
		Medium:  base + "-medium.jpg",
		High:    base + "-high.jpg",
	}
}

// FallbackVideos returns a copy of the local dataset, newest first
func FallbackVideos() []model.Video {
	videos := make([]model.Video, len(fallbackVideos))
	for i, v := range fallbackVideos {
		v.Tags = append([]string(nil), v.Tags...)
		videos[i] = v
	}
	sortNewestFirst(videos)
	return videos
}
