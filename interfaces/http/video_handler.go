package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"my-tube/domain/dto"
	"my-tube/interfaces/middleware"
	"my-tube/usecase"
)

type IVideoHandler interface {
	Publish(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	TogglePublish(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (h *VideoHandler) Publish(c *gin.Context) {
	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, err)
		return
	}

	videoFile, err := formFile(c, "videoFile", true)
	if err != nil {
		writeError(c, err)
		return
	}
	videoPath, cleanupVideo, err := saveUpload(c, videoFile)
	if err != nil {
		writeError(c, err)
		return
	}
	defer cleanupVideo()

	thumbnail, err := formFile(c, "thumbnail", true)
	if err != nil {
		writeError(c, err)
		return
	}
	thumbPath, cleanupThumb, err := saveUpload(c, thumbnail)
	if err != nil {
		writeError(c, err)
		return
	}
	defer cleanupThumb()

	video, err := h.videoUsecase.Publish(c.Request.Context(), middleware.Caller(c), req, videoPath, thumbPath)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, video, "video published successfully")
}

func (h *VideoHandler) List(c *gin.Context) {
	var q dto.ListVideosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	page, err := h.videoUsecase.List(c.Request.Context(), q, middleware.Caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, page, "videos fetched successfully")
}

func (h *VideoHandler) Get(c *gin.Context) {
	video, err := h.videoUsecase.GetByID(c.Request.Context(), c.Param("videoId"), middleware.Caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, video, "video fetched successfully")
}

func (h *VideoHandler) Update(c *gin.Context) {
	var req dto.UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, err)
		return
	}

	thumbPath := ""
	if thumbnail, err := formFile(c, "thumbnail", false); err == nil && thumbnail != nil {
		path, cleanup, err := saveUpload(c, thumbnail)
		if err != nil {
			writeError(c, err)
			return
		}
		defer cleanup()
		thumbPath = path
	}

	video, err := h.videoUsecase.UpdateDetails(c.Request.Context(), middleware.Caller(c), c.Param("videoId"), req, thumbPath)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, video, "video updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoUsecase.Delete(c.Request.Context(), middleware.Caller(c), c.Param("videoId")); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, nil, "video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	video, err := h.videoUsecase.TogglePublish(c.Request.Context(), middleware.Caller(c), c.Param("videoId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, video, "publish status toggled successfully")
}
