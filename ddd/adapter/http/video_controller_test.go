package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highlight-vmaf-service/ddd/application/cqe"
	"highlight-vmaf-service/ddd/application/dto"
	"highlight-vmaf-service/pkg/errno"
	"highlight-vmaf-service/pkg/restapi"
)

type stubVideoApp struct {
	lastCreate   *cqe.CreateVideoCqe
	lastList     *cqe.ListVideosQuery
	lastChild    *cqe.ListChildQuery
	createResult *dto.VideoDTO
	createErr    error
	batchResult  *dto.BatchCreationDTO
	batchMessage string
	listResult   *dto.PaginationDTO
	childResult  *dto.PaginationDTO
	childErr     error
}

func (s *stubVideoApp) CreateVideo(_ context.Context, req *cqe.CreateVideoCqe) (*dto.VideoDTO, error) {
	s.lastCreate = req
	return s.createResult, s.createErr
}

func (s *stubVideoApp) CreateVideosBatch(_ context.Context, req *cqe.BatchCreateVideoCqe) (*dto.BatchCreationDTO, string, error) {
	return s.batchResult, s.batchMessage, nil
}

func (s *stubVideoApp) ListVideos(_ context.Context, q *cqe.ListVideosQuery) *dto.PaginationDTO {
	s.lastList = q
	return s.listResult
}

func (s *stubVideoApp) ListVideoHighlights(_ context.Context, q *cqe.ListChildQuery) (*dto.PaginationDTO, error) {
	s.lastChild = q
	return s.childResult, s.childErr
}

func (s *stubVideoApp) ListHighlightFrames(_ context.Context, q *cqe.ListChildQuery) (*dto.PaginationDTO, error) {
	s.lastChild = q
	return s.childResult, s.childErr
}

func newTestEngine(stub *stubVideoApp) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	controller := NewVideoController(stub)

	v1 := engine.Group("/api/v1")
	v1.POST("/videos", controller.CreateVideo)
	v1.POST("/videos/batch", controller.CreateVideosBatch)
	v1.GET("/videos", controller.ListVideos)
	v1.GET("/videos/:video_id/highlights", controller.ListVideoHighlights)
	v1.GET("/highlights/:highlight_id/frames", controller.ListHighlightFrames)
	return engine
}

func doRequest(engine *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, restapi.Response) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp restapi.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestCreateVideoEndpoint(t *testing.T) {
	stub := &stubVideoApp{createResult: &dto.VideoDTO{ID: 1, Title: "goal"}}
	engine := newTestEngine(stub)

	w, resp := doRequest(engine, http.MethodPost, "/api/v1/videos",
		`{"original_url":"https://a/o.mp4","highlight_url":"https://a/h.mp4","title":"goal"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Video created successfully", resp.Message)
	require.NotNil(t, stub.lastCreate)
	assert.Equal(t, "goal", stub.lastCreate.Title)
}

func TestCreateVideoEndpointRejectsMalformedJSON(t *testing.T) {
	engine := newTestEngine(&stubVideoApp{})

	w, resp := doRequest(engine, http.MethodPost, "/api/v1/videos", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "failed", resp.Status)
}

func TestBatchEndpointAlwaysReturns201(t *testing.T) {
	stub := &stubVideoApp{
		batchResult:  &dto.BatchCreationDTO{Total: 2, SuccessCount: 0, FailedCount: 2},
		batchMessage: "All videos failed to create",
	}
	engine := newTestEngine(stub)

	w, resp := doRequest(engine, http.MethodPost, "/api/v1/videos/batch",
		`{"videos":[{"original_url":"https://a/o.mp4","highlight_url":"https://a/h.mp4","title":"a"}]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "All videos failed to create", resp.Message)
}

func TestListVideosQueryDefaults(t *testing.T) {
	stub := &stubVideoApp{listResult: dto.NewPaginationDTO([]*dto.VideoDTO{}, 0, 1, 10)}
	engine := newTestEngine(stub)

	w, _ := doRequest(engine, http.MethodGet, "/api/v1/videos", "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.lastList)
	assert.Equal(t, 1, stub.lastList.Page)
	assert.Equal(t, 10, stub.lastList.Size)
	assert.Equal(t, "id", stub.lastList.OrderBy)
	assert.Equal(t, "desc", stub.lastList.OrderDirection)
	assert.Nil(t, stub.lastList.StatusFilter)
}

func TestListVideosQueryParsing(t *testing.T) {
	stub := &stubVideoApp{listResult: dto.NewPaginationDTO([]*dto.VideoDTO{}, 0, 2, 20)}
	engine := newTestEngine(stub)

	doRequest(engine, http.MethodGet,
		"/api/v1/videos?page=2&size=20&order_by=title&order_direction=asc&status_filter=1&query=goal", "")

	require.NotNil(t, stub.lastList)
	assert.Equal(t, 2, stub.lastList.Page)
	assert.Equal(t, 20, stub.lastList.Size)
	assert.Equal(t, "title", stub.lastList.OrderBy)
	assert.Equal(t, "asc", stub.lastList.OrderDirection)
	require.NotNil(t, stub.lastList.StatusFilter)
	assert.Equal(t, 1, *stub.lastList.StatusFilter)
	assert.Equal(t, "goal", stub.lastList.Query)
}

func TestListHighlightsParsesParentID(t *testing.T) {
	stub := &stubVideoApp{childResult: dto.NewPaginationDTO([]int{}, 0, 1, 10)}
	engine := newTestEngine(stub)

	w, _ := doRequest(engine, http.MethodGet, "/api/v1/videos/42/highlights", "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.lastChild)
	assert.Equal(t, int64(42), stub.lastChild.ParentID)
	assert.Equal(t, "asc", stub.lastChild.OrderDirection)
}

func TestListFramesDefaultsToFrameOrder(t *testing.T) {
	stub := &stubVideoApp{childResult: dto.NewPaginationDTO([]int{}, 0, 1, 10)}
	engine := newTestEngine(stub)

	doRequest(engine, http.MethodGet, "/api/v1/highlights/7/frames", "")

	require.NotNil(t, stub.lastChild)
	assert.Equal(t, int64(7), stub.lastChild.ParentID)
	assert.Equal(t, "frame_index", stub.lastChild.OrderBy)
}

func TestListHighlightsNonNumericParent(t *testing.T) {
	stub := &stubVideoApp{childErr: errno.ErrVideoIDRequired}
	engine := newTestEngine(stub)

	w, resp := doRequest(engine, http.MethodGet, "/api/v1/videos/abc/highlights", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "failed", resp.Status)
	// The unparsable id reaches the app layer as zero and is rejected there.
	assert.Equal(t, int64(0), stub.lastChild.ParentID)
}
