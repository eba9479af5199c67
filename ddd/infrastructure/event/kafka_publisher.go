package event

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"highlight-vmaf-service/ddd/domain/entity"
	"highlight-vmaf-service/pkg/config"
	"highlight-vmaf-service/pkg/logger"
)

// Publisher emits domain events for downstream analytics. Publishing is
// best-effort: a failed emit is logged and never fails the request.
type Publisher interface {
	VideoCreated(ctx context.Context, record *entity.VideoRecord)
	Close()
}

// VideoCreatedEvent is the Kafka wire shape for a freshly ingested video.
type VideoCreatedEvent struct {
	VideoID      int64  `json:"video_id"`
	Title        string `json:"title"`
	OriginalURL  string `json:"original_url"`
	HighlightURL string `json:"highlight_url"`
	Timestamp    int64  `json:"timestamp"`
}

type kafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaPublisher builds the video-created event publisher, or a no-op
// publisher when kafka is disabled.
func NewKafkaPublisher(cfg config.KafkaConfig) Publisher {
	if !cfg.Enabled {
		return noopPublisher{}
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.BootstrapServers...),
		Topic:        cfg.VideoCreatedTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
	}
	logger.Infof("Kafka publisher opened brokers=%v topic=%s", cfg.BootstrapServers, cfg.VideoCreatedTopic)
	return &kafkaPublisher{writer: w, topic: cfg.VideoCreatedTopic}
}

func (p *kafkaPublisher) VideoCreated(ctx context.Context, record *entity.VideoRecord) {
	value, err := json.Marshal(VideoCreatedEvent{
		VideoID:      record.ID,
		Title:        record.Title,
		OriginalURL:  record.OriginalURL,
		HighlightURL: record.HighlightURL,
		Timestamp:    time.Now().Unix(),
	})
	if err != nil {
		logger.Errorf("Failed to encode video created event video_id=%d error=%v", record.ID, err)
		return
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(record.ID, 10)),
		Value: value,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Warnf("Failed to publish video created event video_id=%d topic=%s error=%v", record.ID, p.topic, err)
	}
}

func (p *kafkaPublisher) Close() {
	_ = p.writer.Close()
}

type noopPublisher struct{}

func (noopPublisher) VideoCreated(context.Context, *entity.VideoRecord) {}
func (noopPublisher) Close()                                           {}
