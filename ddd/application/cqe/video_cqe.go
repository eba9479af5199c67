package cqe

import (
	"strings"

	"highlight-vmaf-service/pkg/errno"
)

// CreateVideoCqe is the single-video ingestion command.
type CreateVideoCqe struct {
	OriginalURL  string `json:"original_url"`
	HighlightURL string `json:"highlight_url"`
	Title        string `json:"title"`
}

// Validate rejects the command before any store or queue side effect.
func (c *CreateVideoCqe) Validate() error {
	if strings.TrimSpace(c.OriginalURL) == "" {
		return errno.ErrOriginalURLRequired
	}
	if strings.TrimSpace(c.HighlightURL) == "" {
		return errno.ErrHighlightURLRequired
	}
	if strings.TrimSpace(c.Title) == "" {
		return errno.ErrTitleRequired
	}
	return nil
}

// MaxBatchSize bounds one batch request.
const MaxBatchSize = 100

// BatchCreateVideoCqe is the batch ingestion command.
type BatchCreateVideoCqe struct {
	Videos []CreateVideoCqe `json:"videos"`
}

// Validate checks the batch bounds and every item. A single malformed item
// rejects the whole request; partial failure accounting only applies to
// store/queue effects, not to malformed input.
func (c *BatchCreateVideoCqe) Validate() error {
	if len(c.Videos) == 0 {
		return errno.ErrBatchEmpty
	}
	if len(c.Videos) > MaxBatchSize {
		return errno.ErrBatchTooLarge
	}
	for i := range c.Videos {
		if err := c.Videos[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ListVideosQuery carries pagination, sorting and filtering for the video
// listing. Sort values are validated downstream against the whitelist.
type ListVideosQuery struct {
	Page           int
	Size           int
	OrderBy        string
	OrderDirection string
	StatusFilter   *int
	Query          string
}

// Normalize clamps pagination into the supported range.
func (q *ListVideosQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 || q.Size > 100 {
		q.Size = 10
	}
}

// ListChildQuery carries pagination and sorting for child listings keyed by
// a mandatory parent id.
type ListChildQuery struct {
	ParentID       int64
	Page           int
	Size           int
	OrderBy        string
	OrderDirection string
}

// Validate requires a positive parent id; pagination is clamped in place.
func (q *ListChildQuery) Validate(parentRequired *errno.Errno) error {
	if q.ParentID < 1 {
		return parentRequired
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 || q.Size > 100 {
		q.Size = 10
	}
	return nil
}
