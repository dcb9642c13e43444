package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"my-tube/domain/dto"
	"my-tube/interfaces/middleware"
	"my-tube/usecase"
)

type ICommentHandler interface {
	List(c *gin.Context)
	Add(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (h *CommentHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	page, err := h.commentUsecase.List(c.Request.Context(), c.Param("videoId"), middleware.Caller(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, page, "comments fetched successfully")
}

func (h *CommentHandler) Add(c *gin.Context) {
	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	comment, err := h.commentUsecase.Add(c.Request.Context(), middleware.Caller(c), c.Param("videoId"), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, comment, "comment added successfully")
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	comment, err := h.commentUsecase.Update(c.Request.Context(), middleware.Caller(c), c.Param("commentId"), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, comment, "comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentUsecase.Delete(c.Request.Context(), middleware.Caller(c), c.Param("commentId")); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, nil, "comment deleted successfully")
}
