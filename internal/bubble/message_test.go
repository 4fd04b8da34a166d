package bubble

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := map[string]Status{
		"":        StatusNone,
		"sending": StatusSending,
		"Sent":    StatusSent,
		" read ":  StatusRead,
		"FAILED":  StatusFailed,
	}

	for in, want := range tests {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStatus("delivered")
	assert.Error(t, err)
}

func TestStatusJSON(t *testing.T) {
	var v struct {
		Status Status `json:"status"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"status":"failed"}`), &v))
	assert.Equal(t, StatusFailed, v.Status)
	assert.True(t, v.Status.IsValid())

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"failed"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"status":"lost"}`), &v))
}

func TestStatusValidity(t *testing.T) {
	assert.False(t, StatusNone.IsValid())
	assert.False(t, Status(200).IsValid())
	assert.Equal(t, "Status(200)", Status(200).String())

	_, err := Status(200).MarshalText()
	assert.Error(t, err)
}

func TestImageAttachmentThumbnailFallback(t *testing.T) {
	img := ImageAttachment{URL: "https://example.com/full.png"}
	assert.Equal(t, img.URL, img.ThumbnailURL())

	img.Thumbnail = "https://example.com/thumb.png"
	assert.Equal(t, img.Thumbnail, img.ThumbnailURL())
	assert.Equal(t, "https://example.com/full.png", img.FullURL())
}
