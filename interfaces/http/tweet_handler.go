package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"my-tube/domain/dto"
	"my-tube/interfaces/middleware"
	"my-tube/usecase"
)

type ITweetHandler interface {
	Create(c *gin.Context)
	ListByUser(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type TweetHandler struct {
	tweetUsecase usecase.ITweetUsecase
}

func NewTweetHandler(tweetUsecase usecase.ITweetUsecase) ITweetHandler {
	return &TweetHandler{tweetUsecase: tweetUsecase}
}

func (h *TweetHandler) Create(c *gin.Context) {
	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	tweet, err := h.tweetUsecase.Create(c.Request.Context(), middleware.Caller(c), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, tweet, "tweet created successfully")
}

func (h *TweetHandler) ListByUser(c *gin.Context) {
	tweets, err := h.tweetUsecase.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, tweets, "tweets fetched successfully")
}

func (h *TweetHandler) Update(c *gin.Context) {
	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	tweet, err := h.tweetUsecase.Update(c.Request.Context(), middleware.Caller(c), c.Param("tweetId"), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, tweet, "tweet updated successfully")
}

func (h *TweetHandler) Delete(c *gin.Context) {
	if err := h.tweetUsecase.Delete(c.Request.Context(), middleware.Caller(c), c.Param("tweetId")); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, nil, "tweet deleted successfully")
}
