package persistence

import (
	"context"

	"highlight-vmaf-service/ddd/domain/entity"
	"highlight-vmaf-service/ddd/domain/repo"
	"highlight-vmaf-service/ddd/infrastructure/database/convertor"
	"highlight-vmaf-service/ddd/infrastructure/database/dao"
	"highlight-vmaf-service/pkg/errno"
	"highlight-vmaf-service/pkg/logger"
)

// videoRepositoryImpl is the error boundary of the record store: raw driver
// errors never escape it. Reads degrade to empty results so listing stays
// available during store outages; inserts surface a database sentinel.
type videoRepositoryImpl struct {
	videoDao  *dao.VideoDAO
	convertor *convertor.VideoConvertor
}

func NewVideoRepository() repo.VideoRepository {
	return NewVideoRepositoryWith(dao.NewVideoDAO())
}

func NewVideoRepositoryWith(videoDao *dao.VideoDAO) repo.VideoRepository {
	return &videoRepositoryImpl{
		videoDao:  videoDao,
		convertor: convertor.NewVideoConvertor(),
	}
}

func (r *videoRepositoryImpl) Insert(ctx context.Context, record *entity.VideoRecord) (*entity.VideoRecord, error) {
	videoPo := r.convertor.ToPO(record)
	videoPo.ID = 0
	videoPo.Status = entity.StatusQueued

	if err := r.videoDao.Insert(ctx, videoPo); err != nil {
		logger.Errorf("Error inserting video title=%q error=%v", record.Title, err)
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	return r.convertor.ToEntity(videoPo), nil
}

func (r *videoRepositoryImpl) ListPage(ctx context.Context, page, size int, orderBy, orderDirection string, status *int, titleQuery string) []*entity.VideoRecord {
	filters, sort := buildVideoQuery(orderBy, orderDirection, status, titleQuery)
	videos, err := r.videoDao.ListPage(ctx, filters, sort, page, size)
	if err != nil {
		logger.Errorf("Error fetching video page page=%d size=%d error=%v", page, size, err)
		return []*entity.VideoRecord{}
	}
	return r.convertor.ToEntities(videos)
}

func (r *videoRepositoryImpl) Count(ctx context.Context, status *int, titleQuery string) int64 {
	filters, _ := buildVideoQuery("", "", status, titleQuery)
	total, err := r.videoDao.Count(ctx, filters)
	if err != nil {
		logger.Errorf("Error counting videos error=%v", err)
		return 0
	}
	return total
}
