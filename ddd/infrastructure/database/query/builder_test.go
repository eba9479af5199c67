package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoSortWhitelist(t *testing.T) {
	tests := []struct {
		name      string
		column    string
		direction string
		want      Sort
	}{
		{
			name:      "known column and direction pass through",
			column:    "title",
			direction: "asc",
			want:      Sort{Column: "title", Direction: "asc"},
		},
		{
			name:      "unknown column falls back to id",
			column:    "password; DROP TABLE video_info",
			direction: "asc",
			want:      Sort{Column: "id", Direction: "asc"},
		},
		{
			name:      "unknown direction falls back to per-call default",
			column:    "status",
			direction: "sideways",
			want:      Sort{Column: "status", Direction: "desc"},
		},
		{
			name:      "direction is case insensitive",
			column:    "id",
			direction: "DESC",
			want:      Sort{Column: "id", Direction: "desc"},
		},
		{
			name:      "empty everything yields default sort",
			column:    "",
			direction: "",
			want:      Sort{Column: "id", Direction: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VideoSort(tt.column, tt.direction, "desc"))
		})
	}
}

func TestStatSortColumns(t *testing.T) {
	for _, col := range []string{"id", "video_id", "vmaf_mean", "vmaf_min", "vmaf_max", "duration", "start_time", "end_time"} {
		got := StatSort(col, "asc", "asc")
		assert.Equal(t, col, got.Column)
	}

	// Video columns are not valid for stats.
	got := StatSort("title", "asc", "asc")
	assert.Equal(t, DefaultSortColumn, got.Column)
}

func TestFrameSortColumns(t *testing.T) {
	got := FrameSort("frame_index", "asc", "asc")
	assert.Equal(t, Sort{Column: "frame_index", Direction: "asc"}, got)

	got = FrameSort("vmaf_mean", "asc", "asc")
	assert.Equal(t, DefaultSortColumn, got.Column)
}

func TestSortBadDefaultDirection(t *testing.T) {
	// Even a bogus per-call default cannot leak into the clause.
	got := VideoSort("id", "bogus", "likewise")
	assert.Equal(t, "desc", got.Direction)
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "vmaf_mean desc", Sort{Column: "vmaf_mean", Direction: "desc"}.OrderClause())
}
