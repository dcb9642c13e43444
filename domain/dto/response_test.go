package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"my-tube/domain/dto"
)

func TestNewSuccessEnvelope(t *testing.T) {
	res := dto.NewSuccess(http.StatusOK, "payload", "done")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "payload", res.Data)
	assert.Equal(t, "done", res.Message)
	assert.True(t, res.Success)
	assert.Empty(t, res.Errors)
}

func TestNewErrorEnvelope(t *testing.T) {
	res := dto.NewError(http.StatusNotFound, "video not found", "detail")

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Nil(t, res.Data)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"detail"}, res.Errors)
}

func TestNewPageTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{0, 10, 0},
		{5, 10, 1},
		{10, 10, 1},
		{25, 10, 3},
		{101, 10, 11},
	}
	for _, tt := range tests {
		page := dto.NewPage([]int{}, tt.total, 1, tt.limit)
		assert.Equal(t, tt.want, page.TotalPages)
	}
}
