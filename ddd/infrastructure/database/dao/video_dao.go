package dao

import (
	"context"

	"gorm.io/gorm"

	"highlight-vmaf-service/ddd/infrastructure/database/po"
	"highlight-vmaf-service/ddd/infrastructure/database/query"
	"highlight-vmaf-service/internal/resource"
)

// VideoDAO is the data access object for the video_info table.
type VideoDAO struct {
	db *gorm.DB
}

// NewVideoDAO creates a DAO bound to the shared database handle.
func NewVideoDAO() *VideoDAO {
	return NewVideoDAOWith(resource.DefaultMysqlResource().MainDB())
}

// NewVideoDAOWith creates a DAO bound to an explicit handle.
func NewVideoDAOWith(db *gorm.DB) *VideoDAO {
	return &VideoDAO{db: db}
}

// Insert creates one row; gorm backfills the assigned id.
func (d *VideoDAO) Insert(ctx context.Context, videoPo *po.VideoInfo) error {
	return d.db.WithContext(ctx).Create(videoPo).Error
}

// ListPage returns one page ordered by the validated sort. Filter binds come
// first via filters.Apply, limit/offset last.
func (d *VideoDAO) ListPage(ctx context.Context, filters *query.VideoFilters, sort query.Sort, page, size int) ([]*po.VideoInfo, error) {
	var videos []*po.VideoInfo
	offset := (page - 1) * size
	tx := filters.Apply(d.db.WithContext(ctx).Model(&po.VideoInfo{}))
	if err := tx.Order(sort.OrderClause()).Limit(size).Offset(offset).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// Count returns the number of rows matching the same filters as ListPage.
func (d *VideoDAO) Count(ctx context.Context, filters *query.VideoFilters) (int64, error) {
	var total int64
	tx := filters.Apply(d.db.WithContext(ctx).Model(&po.VideoInfo{}))
	if err := tx.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
