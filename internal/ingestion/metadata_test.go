package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_JSONMarshaling(t *testing.T) {
	metadata := &Metadata{
		URL:       "https://example.com/job",
		Timestamp: "2024-01-01T00:00:00Z",
		Hash:      "abcd1234",
		Platform:  "greenhouse",
		Bytes:     42,
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, jsonBytes)

	var unmarshaled Metadata
	err = json.Unmarshal(jsonBytes, &unmarshaled)
	require.NoError(t, err)
	assert.Equal(t, metadata.URL, unmarshaled.URL)
	assert.Equal(t, metadata.Timestamp, unmarshaled.Timestamp)
	assert.Equal(t, metadata.Hash, unmarshaled.Hash)
	assert.Equal(t, metadata.Platform, unmarshaled.Platform)
	assert.Equal(t, metadata.Bytes, unmarshaled.Bytes)
}

func TestNewMetadata_Fields(t *testing.T) {
	metadata := NewMetadata("some cleaned content", "https://example.com/job")

	assert.Equal(t, "https://example.com/job", metadata.URL)
	assert.Len(t, metadata.Hash, 64)
	assert.Equal(t, len("some cleaned content"), metadata.Bytes)

	parsed, err := time.Parse(time.RFC3339, metadata.Timestamp)
	require.NoError(t, err)
	assert.False(t, parsed.IsZero())
}

func TestNewMetadata_HashIsDeterministic(t *testing.T) {
	first := NewMetadata("identical content", "")
	second := NewMetadata("identical content", "")
	other := NewMetadata("different content", "")

	assert.Equal(t, first.Hash, second.Hash)
	assert.NotEqual(t, first.Hash, other.Hash)
}
