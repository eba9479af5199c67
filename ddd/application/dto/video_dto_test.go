package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationDTO(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		pageSize   int
		wantPages  int
	}{
		{"exact multiple", 20, 10, 2},
		{"partial last page", 25, 10, 3},
		{"single item", 1, 10, 1},
		{"empty", 0, 10, 0},
		{"zero page size", 25, 0, 0},
		{"negative page size", 25, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginationDTO(nil, tt.totalItems, 1, tt.pageSize)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.totalItems, p.TotalItems)
			assert.Equal(t, 1, p.CurrentPage)
		})
	}
}
