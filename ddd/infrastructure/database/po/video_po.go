package po

// VideoInfo is the persistent object for the video_info table. Status is
// owned by the external worker after insert; this service only writes 0.
type VideoInfo struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OriginalURL  string `gorm:"column:original_url;size:500;not null" json:"original_url"`
	HighlightURL string `gorm:"column:highlight_url;size:500;not null" json:"highlight_url"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Status       int    `gorm:"index;not null;default:0" json:"status"`
}

// TableName maps to the shared schema owned with the worker.
func (VideoInfo) TableName() string {
	return "video_info"
}

// VideoStat is the persistent object for the video_stats table, populated
// by the worker and read-only here.
type VideoStat struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	VideoID   int64    `gorm:"column:video_id;index;not null" json:"video_id"`
	VmafMean  *float64 `gorm:"column:vmaf_mean" json:"vmaf_mean"`
	VmafMin   *float64 `gorm:"column:vmaf_min" json:"vmaf_min"`
	VmafMax   *float64 `gorm:"column:vmaf_max" json:"vmaf_max"`
	Duration  *float64 `json:"duration"`
	StartTime *float64 `gorm:"column:start_time" json:"start_time"`
	EndTime   *float64 `gorm:"column:end_time" json:"end_time"`
}

func (VideoStat) TableName() string {
	return "video_stats"
}

// HighlightFrame is the persistent object for the highlight_frames table,
// populated by the worker and read-only here.
type HighlightFrame struct {
	ID          int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	HighlightID int64    `gorm:"column:highlight_id;index;not null" json:"highlight_id"`
	FrameIndex  int      `gorm:"column:frame_index;not null" json:"frame_index"`
	Timestamp   *float64 `json:"timestamp"`
	VmafScore   *float64 `gorm:"column:vmaf_score" json:"vmaf_score"`
}

func (HighlightFrame) TableName() string {
	return "highlight_frames"
}
