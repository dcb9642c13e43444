package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"my-tube/interfaces/middleware"
	"my-tube/usecase"
)

type IDashboardHandler interface {
	ChannelStats(c *gin.Context)
	ChannelVideos(c *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase) IDashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) ChannelStats(c *gin.Context) {
	stats, err := h.dashboardUsecase.GetChannelStats(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, stats, "channel stats fetched successfully")
}

func (h *DashboardHandler) ChannelVideos(c *gin.Context) {
	videos, err := h.dashboardUsecase.GetChannelVideos(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, videos, "channel videos fetched successfully")
}
