// Package http holds the gin handlers. Every response, success or failure,
// goes through the envelope helpers here.
package http

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"my-tube/domain/apperror"
	"my-tube/domain/dto"
	"my-tube/infrastructure/logger"
)

func writeSuccess(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, dto.NewSuccess(statusCode, data, message))
}

// writeError maps the error's kind to a status and writes the envelope.
// Internal details are logged, not leaked.
func writeError(c *gin.Context, err error) {
	status := apperror.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.GetLogger().WithField("error", err).Error("Request failed")
		message = "something went wrong"
	}
	c.JSON(status, dto.NewError(status, message))
}

func writeBindError(c *gin.Context, err error) {
	logger.GetLogger().WithField("error", err).Info("Invalid request payload")
	c.JSON(http.StatusBadRequest, dto.NewError(http.StatusBadRequest, "invalid request payload", err.Error()))
}

// saveUpload stages a multipart file in the temp dir so the media adapter can
// stream it. The caller removes it via the returned cleanup.
func saveUpload(c *gin.Context, file *multipart.FileHeader) (string, func(), error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", nil, apperror.Internal("unable to stage uploaded file", err)
	}
	return path, func() { _ = os.Remove(path) }, nil
}

// formFile returns the named multipart file, or nil when absent and the file
// is optional.
func formFile(c *gin.Context, name string, required bool) (*multipart.FileHeader, error) {
	file, err := c.FormFile(name)
	if err != nil {
		if required {
			return nil, apperror.InvalidInput(name + " file is required")
		}
		return nil, nil
	}
	return file, nil
}
