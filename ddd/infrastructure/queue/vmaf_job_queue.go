package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"highlight-vmaf-service/ddd/domain/entity"
	"highlight-vmaf-service/pkg/config"
	"highlight-vmaf-service/pkg/logger"
	"highlight-vmaf-service/pkg/redisclient"
)

// JobQueue hands a stored video off to the VMAF worker pool.
type JobQueue interface {
	Push(ctx context.Context, record *entity.VideoRecord) error
}

// JobDescriptorV2 is the structured wire shape consumed by v2 workers. v1
// workers receive the bare decimal video id instead. The shape is fixed per
// deployment and must match what the worker fleet expects.
type JobDescriptorV2 struct {
	VideoID      int64  `json:"video_id"`
	OriginalURL  string `json:"original_url"`
	HighlightURL string `json:"highlight_url"`
}

// EncodeJobDescriptor renders the queue payload for the given processor
// version.
func EncodeJobDescriptor(version string, record *entity.VideoRecord) (string, error) {
	switch version {
	case "v1":
		return strconv.FormatInt(record.ID, 10), nil
	case "v2":
		payload, err := json.Marshal(JobDescriptorV2{
			VideoID:      record.ID,
			OriginalURL:  record.OriginalURL,
			HighlightURL: record.HighlightURL,
		})
		if err != nil {
			return "", err
		}
		return string(payload), nil
	default:
		return "", fmt.Errorf("unknown processor version %q", version)
	}
}

// VMAFJobQueue pushes job descriptors onto the Redis list the worker pool
// consumes from.
type VMAFJobQueue struct {
	client *redisclient.Client
	cfg    config.QueueConfig
}

func NewVMAFJobQueue(client *redisclient.Client, cfg config.QueueConfig) *VMAFJobQueue {
	return &VMAFJobQueue{client: client, cfg: cfg}
}

// Push enqueues one job descriptor. The underlying client already retries
// transient failures; a zero push count after that is reported as an error
// for the caller to log, never to fail on.
func (q *VMAFJobQueue) Push(ctx context.Context, record *entity.VideoRecord) error {
	payload, err := EncodeJobDescriptor(q.cfg.ProcessorVersion, record)
	if err != nil {
		return err
	}

	queueName := q.cfg.QueueName()
	if n := q.client.Push(ctx, queueName, payload); n == 0 {
		return fmt.Errorf("push to queue %s returned no entries", queueName)
	}
	logger.Infof("Video pushed to queue video_id=%d queue=%s version=%s", record.ID, queueName, q.cfg.ProcessorVersion)
	return nil
}

// BlockingPop waits for the next job descriptor, used by consumer-side
// tooling. Timeout comes from configuration (0 waits indefinitely);
// connection errors propagate so the consumer can reconnect.
func (q *VMAFJobQueue) BlockingPop(ctx context.Context) (string, error) {
	return q.client.BlockingPop(ctx, q.cfg.QueueName(), q.cfg.BlpopTimeout)
}
