package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rathernotsay21/betirement-sub000/domain/dto"
	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/logger"
	"github.com/rathernotsay21/betirement-sub000/usecase"

	"github.com/gin-gonic/gin"
)

// IVideoHandler defines the interface for video HTTP handlers
type IVideoHandler interface {
	ListVideos(ctx *gin.Context)
	SearchVideos(ctx *gin.Context)
	GetVideo(ctx *gin.Context)
	GetRelatedVideos(ctx *gin.Context)
	GetPlaylistVideos(ctx *gin.Context)
	ClearCache(ctx *gin.Context)
}

// VideoHandler implements the video HTTP handlers
type VideoHandler struct {
	videoUseCase usecase.IVideoUseCase
}

// NewVideoHandler creates a new video handler instance
func NewVideoHandler(videoUseCase usecase.IVideoUseCase) IVideoHandler {
	return &VideoHandler{videoUseCase: videoUseCase}
}

// ListVideos handles GET /api/videos
func (h *VideoHandler) ListVideos(ctx *gin.Context) {
	req := dto.VideoListRequest{
		MaxResults: maxResultsQuery(ctx),
		Category:   ctx.Query("category"),
	}

	var category model.Category
	if req.Category != "" {
		parsed, ok := model.ParseCategory(req.Category)
		if !ok {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid category",
				"allowed": model.Categories,
			})
			return
		}
		category = parsed
	}

	res := h.videoUseCase.LatestVideos(ctx.Request.Context(), req.MaxResults, category)
	ctx.JSON(http.StatusOK, listResponse(res))
}

// SearchVideos handles GET /api/videos/search
func (h *VideoHandler) SearchVideos(ctx *gin.Context) {
	req := dto.VideoSearchRequest{
		Q:          strings.TrimSpace(ctx.Query("q")),
		MaxResults: maxResultsQuery(ctx),
	}
	if req.Q == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Query parameter q is required",
		})
		return
	}

	res := h.videoUseCase.Search(ctx.Request.Context(), req.Q, req.MaxResults)
	ctx.JSON(http.StatusOK, listResponse(res))
}

// GetVideo handles GET /api/videos/:videoId
func (h *VideoHandler) GetVideo(ctx *gin.Context) {
	videoID := ctx.Param("videoId")

	res := h.videoUseCase.Video(ctx.Request.Context(), videoID)
	if res.Data == nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Video not found",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.VideoResponse{
		Success: true,
		Source:  res.Source,
		Data:    res.Data,
	})
}

// GetRelatedVideos handles GET /api/videos/:videoId/related
func (h *VideoHandler) GetRelatedVideos(ctx *gin.Context) {
	res := h.videoUseCase.RelatedVideos(ctx.Request.Context(), ctx.Param("videoId"), maxResultsQuery(ctx))
	ctx.JSON(http.StatusOK, listResponse(res))
}

// GetPlaylistVideos handles GET /api/playlists/:playlistId/videos
func (h *VideoHandler) GetPlaylistVideos(ctx *gin.Context) {
	res := h.videoUseCase.PlaylistVideos(ctx.Request.Context(), ctx.Param("playlistId"), maxResultsQuery(ctx))
	ctx.JSON(http.StatusOK, listResponse(res))
}

// ClearCache handles POST /api/cache/clear
func (h *VideoHandler) ClearCache(ctx *gin.Context) {
	if err := h.videoUseCase.ClearCache(ctx.Request.Context()); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to clear video cache")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to clear cache",
			"message": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// maxResultsQuery supports both snake_case and camelCase; invalid values mean default
func maxResultsQuery(ctx *gin.Context) int64 {
	raw := ctx.Query("max_results")
	if raw == "" {
		raw = ctx.Query("maxResults")
	}
	if raw == "" {
		return 0
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func listResponse(res dto.VideoListResult) dto.VideoListResponse {
	videos := res.Data
	if videos == nil {
		videos = []model.Video{}
	}
	return dto.VideoListResponse{
		Success: true,
		Source:  res.Source,
		Count:   len(videos),
		Data:    videos,
	}
}
