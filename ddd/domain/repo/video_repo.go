package repo

import (
	"context"

	"highlight-vmaf-service/ddd/domain/entity"
)

// VideoRepository is the write-and-read store for video records.
//
// Insert returns the materialized record (store-assigned id, status 0) or an
// error. ListPage and Count never return an error: a store failure is logged
// at the persistence boundary and degrades to an empty result, keeping reads
// available.
type VideoRepository interface {
	Insert(ctx context.Context, record *entity.VideoRecord) (*entity.VideoRecord, error)
	ListPage(ctx context.Context, page, size int, orderBy, orderDirection string, status *int, titleQuery string) []*entity.VideoRecord
	Count(ctx context.Context, status *int, titleQuery string) int64
}

// HighlightStatRepository reads per-video stat rows. Same degradation
// contract as VideoRepository for reads.
type HighlightStatRepository interface {
	ListByVideo(ctx context.Context, videoID int64, page, size int, orderBy, orderDirection string) []*entity.HighlightStat
	CountByVideo(ctx context.Context, videoID int64) int64
}

// HighlightFrameRepository reads per-highlight frame rows.
type HighlightFrameRepository interface {
	ListByHighlight(ctx context.Context, highlightID int64, page, size int, orderBy, orderDirection string) []*entity.HighlightFrame
	CountByHighlight(ctx context.Context, highlightID int64) int64
}
