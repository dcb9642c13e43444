package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"my-tube/interfaces/middleware"
	"my-tube/usecase"
)

type ISubscriptionHandler interface {
	Toggle(c *gin.Context)
	ListSubscribers(c *gin.Context)
	ListSubscribedChannels(c *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	result, err := h.subscriptionUsecase.Toggle(c.Request.Context(), middleware.Caller(c), c.Param("channelId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, result, "subscription toggled")
}

func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	list, err := h.subscriptionUsecase.ListSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, list, "subscribers fetched successfully")
}

func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	list, err := h.subscriptionUsecase.ListSubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, list, "subscribed channels fetched successfully")
}
