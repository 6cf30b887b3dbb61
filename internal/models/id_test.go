package models

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Shape(t *testing.T) {
	id := NewID("comment")

	parts := strings.SplitN(id, "-", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "comment", parts[0])

	millis, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), millis, 5000)

	assert.Len(t, parts[2], 9)
}

func TestNewID_SuffixVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewID("x")] = true
	}
	assert.Greater(t, len(seen), 1)
}
