package entity

// StatusQueued is the initial status of every inserted video. Only the
// external VMAF worker moves a record past it.
const StatusQueued = 0

// VideoRecord is a video registered for highlight evaluation.
type VideoRecord struct {
	ID           int64  `json:"id"`
	OriginalURL  string `json:"original_url"`
	HighlightURL string `json:"highlight_url"`
	Title        string `json:"title"`
	Status       int    `json:"status"`
}

// HighlightStat is a per-video VMAF measurement row written by the external
// worker. Read-only from this service.
type HighlightStat struct {
	ID        int64    `json:"id"`
	VideoID   int64    `json:"video_id"`
	VmafMean  *float64 `json:"vmaf_mean"`
	VmafMin   *float64 `json:"vmaf_min"`
	VmafMax   *float64 `json:"vmaf_max"`
	Duration  *float64 `json:"duration"`
	StartTime *float64 `json:"start_time"`
	EndTime   *float64 `json:"end_time"`
}

// HighlightFrame is a per-frame score row belonging to a highlight stat.
// Read-only from this service.
type HighlightFrame struct {
	ID          int64    `json:"id"`
	HighlightID int64    `json:"highlight_id"`
	FrameIndex  int      `json:"frame_index"`
	Timestamp   *float64 `json:"timestamp"`
	VmafScore   *float64 `json:"vmaf_score"`
}
