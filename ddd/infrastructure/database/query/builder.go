package query

import (
	"strings"

	"gorm.io/gorm"
)

// DefaultSortColumn is used whenever a requested column is not whitelisted.
const DefaultSortColumn = "id"

// Per-entity sort whitelists. These are the only identifiers ever
// interpolated into an ORDER BY clause; everything else is bound.
var (
	videoSortColumns = map[string]struct{}{
		"id": {}, "title": {}, "status": {}, "original_url": {}, "highlight_url": {},
	}
	statSortColumns = map[string]struct{}{
		"id": {}, "video_id": {}, "vmaf_mean": {}, "vmaf_min": {}, "vmaf_max": {},
		"duration": {}, "start_time": {}, "end_time": {},
	}
	frameSortColumns = map[string]struct{}{
		"id": {}, "highlight_id": {}, "frame_index": {}, "timestamp": {}, "vmaf_score": {},
	}
)

// Sort is a validated ordering. Column is guaranteed whitelisted and
// Direction is guaranteed "asc" or "desc" by the constructors below.
type Sort struct {
	Column    string
	Direction string
}

// OrderClause renders the validated ordering for gorm's Order.
func (s Sort) OrderClause() string {
	return s.Column + " " + s.Direction
}

// VideoSort validates ordering for the video_info table.
func VideoSort(column, direction, defaultDirection string) Sort {
	return normalizeSort(column, direction, defaultDirection, videoSortColumns)
}

// StatSort validates ordering for the video_stats table.
func StatSort(column, direction, defaultDirection string) Sort {
	return normalizeSort(column, direction, defaultDirection, statSortColumns)
}

// FrameSort validates ordering for the highlight_frames table.
func FrameSort(column, direction, defaultDirection string) Sort {
	return normalizeSort(column, direction, defaultDirection, frameSortColumns)
}

// normalizeSort enforces the whitelist unconditionally. There is no caller
// bypass: an unknown column silently becomes the default sort key, an
// unknown direction becomes the per-call default.
func normalizeSort(column, direction, defaultDirection string, whitelist map[string]struct{}) Sort {
	if _, ok := whitelist[column]; !ok {
		column = DefaultSortColumn
	}
	direction = strings.ToLower(direction)
	if direction != "asc" && direction != "desc" {
		direction = strings.ToLower(defaultDirection)
		if direction != "asc" && direction != "desc" {
			direction = "desc"
		}
	}
	return Sort{Column: column, Direction: direction}
}

// VideoFilters accumulates WHERE conditions for video listings. Conditions
// are applied in the order they were added and combined with AND; values are
// always bound, never interpolated.
type VideoFilters struct {
	queryFn []func(tx *gorm.DB) *gorm.DB
}

func NewVideoFilters() *VideoFilters {
	return &VideoFilters{queryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

// ByStatus adds an equality condition on status.
func (f *VideoFilters) ByStatus(status int) *VideoFilters {
	f.queryFn = append(f.queryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status = ?", status)
	})
	return f
}

// ByTitleLike adds a substring condition on title.
func (f *VideoFilters) ByTitleLike(pattern string) *VideoFilters {
	f.queryFn = append(f.queryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("title LIKE ?", "%"+pattern+"%")
	})
	return f
}

// Apply folds the accumulated conditions into tx. Pagination is applied by
// the caller afterwards, keeping limit/offset binds last.
func (f *VideoFilters) Apply(tx *gorm.DB) *gorm.DB {
	for _, fn := range f.queryFn {
		tx = fn(tx)
	}
	return tx
}
