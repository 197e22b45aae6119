package server

import (
	"time"

	httpHandler "github.com/rathernotsay21/betirement-sub000/interfaces/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	videoHandler httpHandler.IVideoHandler,
	healthHandler httpHandler.IHealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler.Healthz)

	api := router.Group("api")
	{
		api.GET("/videos", videoHandler.ListVideos)
		api.GET("/videos/search", videoHandler.SearchVideos)
		api.GET("/videos/:videoId", videoHandler.GetVideo)
		api.GET("/videos/:videoId/related", videoHandler.GetRelatedVideos)
		api.GET("/playlists/:playlistId/videos", videoHandler.GetPlaylistVideos)
		api.POST("/cache/clear", videoHandler.ClearCache)
	}

	return router
}
