package dao

import (
	"context"

	"gorm.io/gorm"

	"highlight-vmaf-service/ddd/infrastructure/database/po"
	"highlight-vmaf-service/ddd/infrastructure/database/query"
	"highlight-vmaf-service/internal/resource"
)

// HighlightStatDAO reads per-video stat rows from video_stats. The parent id
// is a mandatory bound predicate, not part of the sort whitelist.
type HighlightStatDAO struct {
	db *gorm.DB
}

func NewHighlightStatDAO() *HighlightStatDAO {
	return NewHighlightStatDAOWith(resource.DefaultMysqlResource().MainDB())
}

func NewHighlightStatDAOWith(db *gorm.DB) *HighlightStatDAO {
	return &HighlightStatDAO{db: db}
}

func (d *HighlightStatDAO) ListByVideo(ctx context.Context, videoID int64, sort query.Sort, page, size int) ([]*po.VideoStat, error) {
	var stats []*po.VideoStat
	offset := (page - 1) * size
	if err := d.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order(sort.OrderClause()).
		Limit(size).Offset(offset).
		Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (d *HighlightStatDAO) CountByVideo(ctx context.Context, videoID int64) (int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).
		Model(&po.VideoStat{}).
		Where("video_id = ?", videoID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// HighlightFrameDAO reads per-highlight frame rows from highlight_frames.
type HighlightFrameDAO struct {
	db *gorm.DB
}

func NewHighlightFrameDAO() *HighlightFrameDAO {
	return NewHighlightFrameDAOWith(resource.DefaultMysqlResource().MainDB())
}

func NewHighlightFrameDAOWith(db *gorm.DB) *HighlightFrameDAO {
	return &HighlightFrameDAO{db: db}
}

func (d *HighlightFrameDAO) ListByHighlight(ctx context.Context, highlightID int64, sort query.Sort, page, size int) ([]*po.HighlightFrame, error) {
	var frames []*po.HighlightFrame
	offset := (page - 1) * size
	if err := d.db.WithContext(ctx).
		Where("highlight_id = ?", highlightID).
		Order(sort.OrderClause()).
		Limit(size).Offset(offset).
		Find(&frames).Error; err != nil {
		return nil, err
	}
	return frames, nil
}

func (d *HighlightFrameDAO) CountByHighlight(ctx context.Context, highlightID int64) (int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).
		Model(&po.HighlightFrame{}).
		Where("highlight_id = ?", highlightID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
