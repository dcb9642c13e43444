package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"my-tube/interfaces/middleware"
	"my-tube/usecase"
)

type ILikeHandler interface {
	ToggleVideoLike(c *gin.Context)
	ToggleCommentLike(c *gin.Context)
	ToggleTweetLike(c *gin.Context)
	ListLikedVideos(c *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	result, err := h.likeUsecase.ToggleVideoLike(c.Request.Context(), middleware.Caller(c), c.Param("videoId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, result, "video like toggled")
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	result, err := h.likeUsecase.ToggleCommentLike(c.Request.Context(), middleware.Caller(c), c.Param("commentId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, result, "comment like toggled")
}

func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	result, err := h.likeUsecase.ToggleTweetLike(c.Request.Context(), middleware.Caller(c), c.Param("tweetId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, result, "tweet like toggled")
}

func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	videos, err := h.likeUsecase.ListLikedVideos(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, videos, "liked videos fetched successfully")
}
