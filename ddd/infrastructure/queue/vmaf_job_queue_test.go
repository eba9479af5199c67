package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highlight-vmaf-service/ddd/domain/entity"
)

func TestEncodeJobDescriptorV1(t *testing.T) {
	payload, err := EncodeJobDescriptor("v1", &entity.VideoRecord{
		ID:           123,
		OriginalURL:  "https://cdn.example.com/original/123.mp4",
		HighlightURL: "https://cdn.example.com/highlight/123.mp4",
	})
	require.NoError(t, err)

	// v1 workers consume the bare decimal id, nothing else.
	assert.Equal(t, "123", payload)
}

func TestEncodeJobDescriptorV2(t *testing.T) {
	payload, err := EncodeJobDescriptor("v2", &entity.VideoRecord{
		ID:           123,
		OriginalURL:  "https://cdn.example.com/original/123.mp4",
		HighlightURL: "https://cdn.example.com/highlight/123.mp4",
		Title:        "never serialized",
	})
	require.NoError(t, err)

	var job JobDescriptorV2
	require.NoError(t, json.Unmarshal([]byte(payload), &job))
	assert.Equal(t, int64(123), job.VideoID)
	assert.Equal(t, "https://cdn.example.com/original/123.mp4", job.OriginalURL)
	assert.Equal(t, "https://cdn.example.com/highlight/123.mp4", job.HighlightURL)

	// The wire shape carries exactly video_id, original_url, highlight_url.
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	assert.Len(t, raw, 3)
}

func TestEncodeJobDescriptorUnknownVersion(t *testing.T) {
	_, err := EncodeJobDescriptor("v3", &entity.VideoRecord{ID: 1})
	assert.Error(t, err)
}
