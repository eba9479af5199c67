package dto

import (
	"math"

	"highlight-vmaf-service/ddd/domain/entity"
)

// VideoDTO is the outward shape of a stored video record.
type VideoDTO struct {
	ID           int64  `json:"id"`
	OriginalURL  string `json:"original_url"`
	HighlightURL string `json:"highlight_url"`
	Title        string `json:"title"`
	Status       int    `json:"status"`
}

func NewVideoDTO(e *entity.VideoRecord) *VideoDTO {
	return &VideoDTO{
		ID:           e.ID,
		OriginalURL:  e.OriginalURL,
		HighlightURL: e.HighlightURL,
		Title:        e.Title,
		Status:       e.Status,
	}
}

// VideoCreationResultDTO is the per-item outcome of a batch create.
type VideoCreationResultDTO struct {
	Success   bool      `json:"success"`
	VideoID   *int64    `json:"video_id"`
	Error     *string   `json:"error"`
	VideoData *VideoDTO `json:"video_data"`
}

// BatchCreationDTO aggregates per-item outcomes in input order.
// Total == SuccessCount + FailedCount == len(Results) always holds.
type BatchCreationDTO struct {
	Total        int                      `json:"total"`
	SuccessCount int                      `json:"success_count"`
	FailedCount  int                      `json:"failed_count"`
	Results      []VideoCreationResultDTO `json:"results"`
}

// PaginationDTO is the listing envelope. Key casing follows the dashboard
// contract and differs from the snake_case item shapes on purpose.
type PaginationDTO struct {
	TotalItems  int64       `json:"totalItems"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	Items       interface{} `json:"items"`
}

// NewPaginationDTO computes totalPages = ceil(totalItems/pageSize), with 0
// for a non-positive page size.
func NewPaginationDTO(items interface{}, totalItems int64, currentPage, pageSize int) *PaginationDTO {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}
	return &PaginationDTO{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		Items:       items,
	}
}
