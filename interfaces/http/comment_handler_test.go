package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/apperror"
	"my-tube/domain/dto"
	"my-tube/domain/model"
	httpHandler "my-tube/interfaces/http"
)

type MockCommentUsecase struct {
	mock.Mock
}

func (m *MockCommentUsecase) List(ctx context.Context, videoID string, caller model.User, q dto.PageQuery) (dto.Page, error) {
	args := m.Called(ctx, videoID, caller, q)
	return args.Get(0).(dto.Page), args.Error(1)
}

func (m *MockCommentUsecase) Add(ctx context.Context, caller model.User, videoID, content string) (model.Comment, error) {
	args := m.Called(ctx, caller, videoID, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentUsecase) Update(ctx context.Context, caller model.User, commentID, content string) (model.Comment, error) {
	args := m.Called(ctx, caller, commentID, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentUsecase) Delete(ctx context.Context, caller model.User, commentID string) error {
	args := m.Called(ctx, caller, commentID)
	return args.Error(0)
}

func newCommentRouter(uc *MockCommentUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := httpHandler.NewCommentHandler(uc)
	router := gin.New()
	router.GET("/api/v1/comments/:videoId", handler.List)
	return router
}

// An empty comment list is a 200 with an empty page, not an error.
func TestCommentListEmptyReturnsSuccessEnvelope(t *testing.T) {
	uc := new(MockCommentUsecase)
	videoID := bson.NewObjectID().Hex()

	uc.On("List", mock.Anything, videoID, mock.Anything, dto.PageQuery{Page: 1, Limit: 10}).
		Return(dto.NewPage([]model.CommentView{}, 0, 1, 10), nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/comments/"+videoID, nil)
	newCommentRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusOK, w.Code)

	var res dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, nethttp.StatusOK, res.StatusCode)

	payload, ok := res.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), payload["total"])
	assert.NotNil(t, payload["items"])
}

func TestCommentListMissingVideoReturnsNotFoundEnvelope(t *testing.T) {
	uc := new(MockCommentUsecase)
	videoID := bson.NewObjectID().Hex()

	uc.On("List", mock.Anything, videoID, mock.Anything, mock.Anything).
		Return(dto.Page{}, apperror.NotFound("video not found")).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/comments/"+videoID, nil)
	newCommentRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusNotFound, w.Code)

	var res dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, "video not found", res.Message)
}
