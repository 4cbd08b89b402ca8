package shared

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := SetTraceID(context.Background())

	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength)

	_, err := hex.DecodeString(traceID)
	assert.NoError(t, err, "Expected valid hex string")
}

func TestWithTraceID(t *testing.T) {
	ctx := WithTraceID(context.Background(), "test-trace-id")
	assert.Equal(t, "test-trace-id", GetTraceID(ctx))
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := context.WithValue(context.Background(), TraceIDKey, 42)
	assert.Empty(t, GetTraceID(ctx), "non-string values are ignored")
}

func TestGenerateTraceIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateTraceID()
		require.Len(t, id, TraceIDLength)
		assert.False(t, seen[id], "Expected unique trace IDs")
		seen[id] = true
	}
}
