package configuration

import (
	"os"
	"strings"
	"time"
)

// YouTubeConfig is the resolved configuration of the video data client
type YouTubeConfig struct {
	APIKey         string
	ChannelID      string
	Endpoint       string
	RequestTimeout time.Duration
	CacheTTL       time.Duration
	MaxRequests    int
	Window         time.Duration
}

// GetYouTubeConfig returns YouTube configuration from JSON config with environment variable fallback.
// Missing credentials are not an error; the client degrades to empty results instead.
func GetYouTubeConfig() *YouTubeConfig {
	return &YouTubeConfig{
		APIKey:         getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", ""),
		ChannelID:      getConfigValue(C.YouTube.ChannelID, "YOUTUBE_CHANNEL_ID", ""),
		Endpoint:       getConfigValue(C.YouTube.Endpoint, "YOUTUBE_ENDPOINT", ""),
		RequestTimeout: time.Duration(C.YouTube.RequestTimeoutSeconds) * time.Second,
		CacheTTL:       time.Duration(C.YouTube.CacheTTLMinutes) * time.Minute,
		MaxRequests:    C.YouTube.RateLimit.MaxRequests,
		Window:         time.Duration(C.YouTube.RateLimit.WindowSeconds) * time.Second,
	}
}

// getConfigValue gets value from environment first, then config, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	// Otherwise use config value if set and not a placeholder
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
