package persistence

import (
	"context"

	"highlight-vmaf-service/ddd/domain/entity"
	"highlight-vmaf-service/ddd/domain/repo"
	"highlight-vmaf-service/ddd/infrastructure/database/convertor"
	"highlight-vmaf-service/ddd/infrastructure/database/dao"
	"highlight-vmaf-service/ddd/infrastructure/database/query"
	"highlight-vmaf-service/pkg/logger"
)

// buildVideoQuery keeps the filter logic shared between ListPage and Count so
// the two can never drift apart.
func buildVideoQuery(orderBy, orderDirection string, status *int, titleQuery string) (*query.VideoFilters, query.Sort) {
	filters := query.NewVideoFilters()
	if status != nil {
		filters.ByStatus(*status)
	}
	if titleQuery != "" {
		filters.ByTitleLike(titleQuery)
	}
	return filters, query.VideoSort(orderBy, orderDirection, "desc")
}

type highlightStatRepositoryImpl struct {
	statDao   *dao.HighlightStatDAO
	convertor *convertor.VideoConvertor
}

func NewHighlightStatRepository() repo.HighlightStatRepository {
	return NewHighlightStatRepositoryWith(dao.NewHighlightStatDAO())
}

func NewHighlightStatRepositoryWith(statDao *dao.HighlightStatDAO) repo.HighlightStatRepository {
	return &highlightStatRepositoryImpl{
		statDao:   statDao,
		convertor: convertor.NewVideoConvertor(),
	}
}

func (r *highlightStatRepositoryImpl) ListByVideo(ctx context.Context, videoID int64, page, size int, orderBy, orderDirection string) []*entity.HighlightStat {
	sort := query.StatSort(orderBy, orderDirection, "asc")
	stats, err := r.statDao.ListByVideo(ctx, videoID, sort, page, size)
	if err != nil {
		logger.Errorf("Error fetching video_stats video_id=%d error=%v", videoID, err)
		return []*entity.HighlightStat{}
	}
	return r.convertor.StatsToEntities(stats)
}

func (r *highlightStatRepositoryImpl) CountByVideo(ctx context.Context, videoID int64) int64 {
	total, err := r.statDao.CountByVideo(ctx, videoID)
	if err != nil {
		logger.Errorf("Error counting video_stats video_id=%d error=%v", videoID, err)
		return 0
	}
	return total
}

type highlightFrameRepositoryImpl struct {
	frameDao  *dao.HighlightFrameDAO
	convertor *convertor.VideoConvertor
}

func NewHighlightFrameRepository() repo.HighlightFrameRepository {
	return NewHighlightFrameRepositoryWith(dao.NewHighlightFrameDAO())
}

func NewHighlightFrameRepositoryWith(frameDao *dao.HighlightFrameDAO) repo.HighlightFrameRepository {
	return &highlightFrameRepositoryImpl{
		frameDao:  frameDao,
		convertor: convertor.NewVideoConvertor(),
	}
}

func (r *highlightFrameRepositoryImpl) ListByHighlight(ctx context.Context, highlightID int64, page, size int, orderBy, orderDirection string) []*entity.HighlightFrame {
	sort := query.FrameSort(orderBy, orderDirection, "asc")
	frames, err := r.frameDao.ListByHighlight(ctx, highlightID, sort, page, size)
	if err != nil {
		logger.Errorf("Error fetching highlight_frames highlight_id=%d error=%v", highlightID, err)
		return []*entity.HighlightFrame{}
	}
	return r.convertor.FramesToEntities(frames)
}

func (r *highlightFrameRepositoryImpl) CountByHighlight(ctx context.Context, highlightID int64) int64 {
	total, err := r.frameDao.CountByHighlight(ctx, highlightID)
	if err != nil {
		logger.Errorf("Error counting highlight_frames highlight_id=%d error=%v", highlightID, err)
		return 0
	}
	return total
}
