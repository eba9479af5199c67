package convertor

import (
	"highlight-vmaf-service/ddd/domain/entity"
	"highlight-vmaf-service/ddd/infrastructure/database/po"
)

// VideoConvertor maps between persistent objects and domain entities.
type VideoConvertor struct{}

func NewVideoConvertor() *VideoConvertor {
	return &VideoConvertor{}
}

func (c *VideoConvertor) ToEntity(p *po.VideoInfo) *entity.VideoRecord {
	return &entity.VideoRecord{
		ID:           p.ID,
		OriginalURL:  p.OriginalURL,
		HighlightURL: p.HighlightURL,
		Title:        p.Title,
		Status:       p.Status,
	}
}

func (c *VideoConvertor) ToPO(e *entity.VideoRecord) *po.VideoInfo {
	return &po.VideoInfo{
		ID:           e.ID,
		OriginalURL:  e.OriginalURL,
		HighlightURL: e.HighlightURL,
		Title:        e.Title,
		Status:       e.Status,
	}
}

func (c *VideoConvertor) ToEntities(pos []*po.VideoInfo) []*entity.VideoRecord {
	entities := make([]*entity.VideoRecord, 0, len(pos))
	for _, p := range pos {
		if p != nil {
			entities = append(entities, c.ToEntity(p))
		}
	}
	return entities
}

func (c *VideoConvertor) StatToEntity(p *po.VideoStat) *entity.HighlightStat {
	return &entity.HighlightStat{
		ID:        p.ID,
		VideoID:   p.VideoID,
		VmafMean:  p.VmafMean,
		VmafMin:   p.VmafMin,
		VmafMax:   p.VmafMax,
		Duration:  p.Duration,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	}
}

func (c *VideoConvertor) StatsToEntities(pos []*po.VideoStat) []*entity.HighlightStat {
	entities := make([]*entity.HighlightStat, 0, len(pos))
	for _, p := range pos {
		if p != nil {
			entities = append(entities, c.StatToEntity(p))
		}
	}
	return entities
}

func (c *VideoConvertor) FrameToEntity(p *po.HighlightFrame) *entity.HighlightFrame {
	return &entity.HighlightFrame{
		ID:          p.ID,
		HighlightID: p.HighlightID,
		FrameIndex:  p.FrameIndex,
		Timestamp:   p.Timestamp,
		VmafScore:   p.VmafScore,
	}
}

func (c *VideoConvertor) FramesToEntities(pos []*po.HighlightFrame) []*entity.HighlightFrame {
	entities := make([]*entity.HighlightFrame, 0, len(pos))
	for _, p := range pos {
		if p != nil {
			entities = append(entities, c.FrameToEntity(p))
		}
	}
	return entities
}
