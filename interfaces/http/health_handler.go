package http

import (
	"net/http"

	"github.com/rathernotsay21/betirement-sub000/domain/repository"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

type IHealthHandler interface {
	Healthz(c *gin.Context)
}

type HealthHandler struct {
	limiter repository.IRateLimiter
}

func NewHealthHandler(limiter repository.IRateLimiter) IHealthHandler {
	return &HealthHandler{limiter: limiter}
}

// Healthz returns OK for health checks together with the current request budget
func (h *HealthHandler) Healthz(ctx *gin.Context) {
	body := gin.H{"status": "ok"}
	if h.limiter != nil {
		window, err := h.limiter.Window(ctx.Request.Context())
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to read rate limit window")
		} else {
			body["rateLimit"] = window
		}
	}
	ctx.JSON(http.StatusOK, body)
}
