package app

import (
	"context"
	"fmt"

	"highlight-vmaf-service/ddd/application/cqe"
	"highlight-vmaf-service/ddd/application/dto"
	"highlight-vmaf-service/ddd/domain/entity"
	"highlight-vmaf-service/ddd/domain/repo"
	"highlight-vmaf-service/ddd/infrastructure/event"
	"highlight-vmaf-service/ddd/infrastructure/queue"
	"highlight-vmaf-service/pkg/config"
	"highlight-vmaf-service/pkg/errno"
	"highlight-vmaf-service/pkg/logger"
)

// VideoApp is the ingestion and read surface of the service.
type VideoApp interface {
	// CreateVideo stores one record and hands the job off to the worker queue.
	CreateVideo(ctx context.Context, req *cqe.CreateVideoCqe) (*dto.VideoDTO, error)
	// CreateVideosBatch processes up to 100 records independently and reports
	// per-item outcomes plus an overall message.
	CreateVideosBatch(ctx context.Context, req *cqe.BatchCreateVideoCqe) (*dto.BatchCreationDTO, string, error)
	// ListVideos returns a filtered, sorted page of videos.
	ListVideos(ctx context.Context, q *cqe.ListVideosQuery) *dto.PaginationDTO
	// ListVideoHighlights returns a page of stat rows for one video.
	ListVideoHighlights(ctx context.Context, q *cqe.ListChildQuery) (*dto.PaginationDTO, error)
	// ListHighlightFrames returns a page of frame rows for one highlight.
	ListHighlightFrames(ctx context.Context, q *cqe.ListChildQuery) (*dto.PaginationDTO, error)
}

type videoAppImpl struct {
	videoRepo repo.VideoRepository
	statRepo  repo.HighlightStatRepository
	frameRepo repo.HighlightFrameRepository
	jobQueue  queue.JobQueue
	publisher event.Publisher
}

// NewVideoAppWith wires the application service from explicit dependencies.
// A nil publisher degrades to the no-op event sink.
func NewVideoAppWith(videoRepo repo.VideoRepository, statRepo repo.HighlightStatRepository, frameRepo repo.HighlightFrameRepository, jobQueue queue.JobQueue, publisher event.Publisher) VideoApp {
	if publisher == nil {
		publisher = event.NewKafkaPublisher(config.KafkaConfig{})
	}
	return &videoAppImpl{
		videoRepo: videoRepo,
		statRepo:  statRepo,
		frameRepo: frameRepo,
		jobQueue:  jobQueue,
		publisher: publisher,
	}
}

// createOne inserts a single record and attempts the queue hand-off. A push
// failure does not undo or fail the insert: the record is durable and
// queryable, and a reconciliation sweep over stale status=0 rows is expected
// to re-push orphans.
func (a *videoAppImpl) createOne(ctx context.Context, req *cqe.CreateVideoCqe) (*entity.VideoRecord, error) {
	stored, err := a.videoRepo.Insert(ctx, &entity.VideoRecord{
		OriginalURL:  req.OriginalURL,
		HighlightURL: req.HighlightURL,
		Title:        req.Title,
	})
	if err != nil {
		return nil, err
	}

	if err := a.jobQueue.Push(ctx, stored); err != nil {
		logger.Warnf("Failed to push video to queue video_id=%d error=%v", stored.ID, err)
	}
	a.publisher.VideoCreated(ctx, stored)

	return stored, nil
}

func (a *videoAppImpl) CreateVideo(ctx context.Context, req *cqe.CreateVideoCqe) (*dto.VideoDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	stored, err := a.createOne(ctx, req)
	if err != nil {
		logger.Errorf("Failed to insert video into database title=%q error=%v", req.Title, err)
		return nil, errno.NewBizError(errno.ErrVideoCreateFailed, err)
	}
	return dto.NewVideoDTO(stored), nil
}

func (a *videoAppImpl) CreateVideosBatch(ctx context.Context, req *cqe.BatchCreateVideoCqe) (*dto.BatchCreationDTO, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	results := make([]dto.VideoCreationResultDTO, 0, len(req.Videos))
	successCount := 0
	failedCount := 0

	for i := range req.Videos {
		stored, err := a.createOne(ctx, &req.Videos[i])
		if err != nil {
			failedCount++
			msg := errno.CodeOf(err).Message
			results = append(results, dto.VideoCreationResultDTO{
				Success: false,
				Error:   &msg,
			})
			logger.Errorf("Failed to insert video #%d title=%q error=%v", i+1, req.Videos[i].Title, err)
			continue
		}

		successCount++
		results = append(results, dto.VideoCreationResultDTO{
			Success:   true,
			VideoID:   &stored.ID,
			VideoData: dto.NewVideoDTO(stored),
		})
	}

	batch := &dto.BatchCreationDTO{
		Total:        len(req.Videos),
		SuccessCount: successCount,
		FailedCount:  failedCount,
		Results:      results,
	}

	var message string
	switch {
	case successCount == len(req.Videos):
		message = fmt.Sprintf("All %d videos created successfully", successCount)
	case successCount > 0:
		message = fmt.Sprintf("%d videos created, %d failed", successCount, failedCount)
	default:
		message = "All videos failed to create"
	}

	return batch, message, nil
}

func (a *videoAppImpl) ListVideos(ctx context.Context, q *cqe.ListVideosQuery) *dto.PaginationDTO {
	q.Normalize()

	videos := a.videoRepo.ListPage(ctx, q.Page, q.Size, q.OrderBy, q.OrderDirection, q.StatusFilter, q.Query)
	total := a.videoRepo.Count(ctx, q.StatusFilter, q.Query)

	items := make([]*dto.VideoDTO, 0, len(videos))
	for _, v := range videos {
		items = append(items, dto.NewVideoDTO(v))
	}
	return dto.NewPaginationDTO(items, total, q.Page, q.Size)
}

func (a *videoAppImpl) ListVideoHighlights(ctx context.Context, q *cqe.ListChildQuery) (*dto.PaginationDTO, error) {
	if err := q.Validate(errno.ErrVideoIDRequired); err != nil {
		return nil, err
	}

	stats := a.statRepo.ListByVideo(ctx, q.ParentID, q.Page, q.Size, q.OrderBy, q.OrderDirection)
	total := a.statRepo.CountByVideo(ctx, q.ParentID)

	return dto.NewPaginationDTO(stats, total, q.Page, q.Size), nil
}

func (a *videoAppImpl) ListHighlightFrames(ctx context.Context, q *cqe.ListChildQuery) (*dto.PaginationDTO, error) {
	if err := q.Validate(errno.ErrHighlightIDRequired); err != nil {
		return nil, err
	}

	frames := a.frameRepo.ListByHighlight(ctx, q.ParentID, q.Page, q.Size, q.OrderBy, q.OrderDirection)
	total := a.frameRepo.CountByHighlight(ctx, q.ParentID)

	return dto.NewPaginationDTO(frames, total, q.Page, q.Size), nil
}
