package configuration

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rathernotsay21/betirement-sub000/infrastructure/logger"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/utils"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	YouTube     YouTube     `json:"youtube"`
	RedisClient RedisClient `json:"redisClient"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	Port           int      `json:"port"`
	AllowedOrigins []string `json:"allowedOrigins"`
}

type YouTube struct {
	APIKey                string    `json:"apiKey"`
	ChannelID             string    `json:"channelId"`
	Endpoint              string    `json:"endpoint"`
	RequestTimeoutSeconds int       `json:"requestTimeoutSeconds"`
	CacheTTLMinutes       int       `json:"cacheTTLMinutes"`
	RateLimit             RateLimit `json:"rateLimit"`
}

type RateLimit struct {
	MaxRequests   int `json:"maxRequests"`
	WindowSeconds int `json:"windowSeconds"`
}

type RedisClient struct {
	Enabled   bool   `json:"enabled"`
	Host      string `json:"host"`
	Port      string `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	DB        int    `json:"db"`
	KeyPrefix string `json:"keyPrefix"`
}

type Logger struct {
	Format string `json:"format"`
	Level  string `json:"level"`
}

var C Config

func init() {
	LoadConfig()
	Reload()
}

// Reload re-applies environment overrides and defaults to C.
// Call it after LoadEnvFromFile so variables from env files take effect.
func Reload() {
	initApp(&C)
	initYouTube(&C)
	initRedis(&C)
	logger.Configure(C.Logger.Format, C.Logger.Level)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().WithField("config", name).Debug("Config file not found, using environment and defaults")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8080
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8080
	}
	if len(C.App.AllowedOrigins) == 0 {
		C.App.AllowedOrigins = []string{"https://betirement.com", "https://www.betirement.com", "http://localhost:3000"}
	}
}

func initYouTube(C *Config) {
	if C.YouTube.RequestTimeoutSeconds <= 0 {
		C.YouTube.RequestTimeoutSeconds = 10
	}
	if C.YouTube.CacheTTLMinutes <= 0 {
		C.YouTube.CacheTTLMinutes = 60
	}
	if C.YouTube.RateLimit.MaxRequests <= 0 {
		C.YouTube.RateLimit.MaxRequests = 50
	}
	if C.YouTube.RateLimit.WindowSeconds <= 0 {
		C.YouTube.RateLimit.WindowSeconds = 60
	}
}

func initRedis(C *Config) {
	if v := os.Getenv("REDIS_ENABLED"); v != "" {
		C.RedisClient.Enabled = utils.IsTruthy(v)
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		C.RedisClient.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		C.RedisClient.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		C.RedisClient.Password = v
	}
	if C.RedisClient.Host == "" {
		C.RedisClient.Host = "localhost"
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = "6379"
	}
	if C.RedisClient.KeyPrefix == "" {
		C.RedisClient.KeyPrefix = "betirement:"
	}
}

// RedisAddr returns host:port of the configured redis server
func (r RedisClient) RedisAddr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}
