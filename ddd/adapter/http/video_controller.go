package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"highlight-vmaf-service/ddd/application/app"
	"highlight-vmaf-service/ddd/application/cqe"
	"highlight-vmaf-service/pkg/errno"
	"highlight-vmaf-service/pkg/restapi"
)

// VideoController exposes the ingestion and read endpoints.
type VideoController struct {
	videoApp app.VideoApp
}

func NewVideoController(videoApp app.VideoApp) *VideoController {
	return &VideoController{
		videoApp: videoApp,
	}
}

// CreateVideo handles POST /api/v1/videos.
func (c *VideoController) CreateVideo(ctx *gin.Context) {
	var req cqe.CreateVideoCqe
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewBizError(errno.ErrInvalidParam, err))
		return
	}

	video, err := c.videoApp.CreateVideo(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}

	restapi.Created(ctx, "Video created successfully", video)
}

// CreateVideosBatch handles POST /api/v1/videos/batch. The response is 201
// even when some or all items failed; per-item outcomes are in the payload.
func (c *VideoController) CreateVideosBatch(ctx *gin.Context) {
	var req cqe.BatchCreateVideoCqe
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewBizError(errno.ErrInvalidParam, err))
		return
	}

	batch, message, err := c.videoApp.CreateVideosBatch(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}

	restapi.Created(ctx, message, batch)
}

// ListVideos handles GET /api/v1/videos.
func (c *VideoController) ListVideos(ctx *gin.Context) {
	q := &cqe.ListVideosQuery{
		OrderBy:        ctx.DefaultQuery("order_by", "id"),
		OrderDirection: ctx.DefaultQuery("order_direction", "desc"),
		Query:          ctx.Query("query"),
	}
	q.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	q.Size, _ = strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if statusStr := ctx.Query("status_filter"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			q.StatusFilter = &status
		}
	}

	page := c.videoApp.ListVideos(ctx.Request.Context(), q)
	restapi.Success(ctx, "Videos retrieved successfully", page)
}

// ListVideoHighlights handles GET /api/v1/videos/:video_id/highlights.
func (c *VideoController) ListVideoHighlights(ctx *gin.Context) {
	q := &cqe.ListChildQuery{
		OrderBy:        ctx.DefaultQuery("order_by", "id"),
		OrderDirection: ctx.DefaultQuery("order_direction", "asc"),
	}
	q.ParentID, _ = strconv.ParseInt(ctx.Param("video_id"), 10, 64)
	q.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	q.Size, _ = strconv.Atoi(ctx.DefaultQuery("size", "10"))

	page, err := c.videoApp.ListVideoHighlights(ctx.Request.Context(), q)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}

	restapi.Success(ctx, "Highlights retrieved successfully", page)
}

// ListHighlightFrames handles GET /api/v1/highlights/:highlight_id/frames.
func (c *VideoController) ListHighlightFrames(ctx *gin.Context) {
	q := &cqe.ListChildQuery{
		OrderBy:        ctx.DefaultQuery("order_by", "frame_index"),
		OrderDirection: ctx.DefaultQuery("order_direction", "asc"),
	}
	q.ParentID, _ = strconv.ParseInt(ctx.Param("highlight_id"), 10, 64)
	q.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	q.Size, _ = strconv.Atoi(ctx.DefaultQuery("size", "10"))

	page, err := c.videoApp.ListHighlightFrames(ctx.Request.Context(), q)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}

	restapi.Success(ctx, "Frames retrieved successfully", page)
}
