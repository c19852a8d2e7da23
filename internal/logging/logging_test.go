package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", "json")

	logger.Debug("cache miss", "key", "k1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "cache miss", line["msg"])
	assert.Equal(t, "k1", line["key"])
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "text")

	logger.Info("ignorado")
	assert.Empty(t, buf.String())

	logger.Warn("aviso")
	assert.Contains(t, buf.String(), "aviso")
}

func TestNewInvalidLevel(t *testing.T) {
	logger := New(&bytes.Buffer{}, "verbose", "text")
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}
