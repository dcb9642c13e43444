package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"my-tube/domain/dto"
	"my-tube/interfaces/middleware"
	"my-tube/usecase"
)

type IPlaylistHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	ListByUser(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	AddVideo(c *gin.Context)
	RemoveVideo(c *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	playlist, err := h.playlistUsecase.Create(c.Request.Context(), middleware.Caller(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, playlist, "playlist created successfully")
}

func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlistUsecase.GetByID(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, playlist, "playlist fetched successfully")
}

func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	playlists, err := h.playlistUsecase.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, playlists, "playlists fetched successfully")
}

func (h *PlaylistHandler) Update(c *gin.Context) {
	var req dto.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	playlist, err := h.playlistUsecase.Update(c.Request.Context(), middleware.Caller(c), c.Param("playlistId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, playlist, "playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.playlistUsecase.Delete(c.Request.Context(), middleware.Caller(c), c.Param("playlistId")); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, nil, "playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlist, err := h.playlistUsecase.AddVideo(c.Request.Context(), middleware.Caller(c), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, playlist, "video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlist, err := h.playlistUsecase.RemoveVideo(c.Request.Context(), middleware.Caller(c), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, playlist, "video removed from playlist")
}
