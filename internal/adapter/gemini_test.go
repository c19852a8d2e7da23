package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiAdapterDefaults(t *testing.T) {
	g := NewGeminiAdapter(nil, GeminiConfig{})

	assert.False(t, g.IsAvailable())
	assert.Equal(t, DefaultGeminiConfig().ChatModel, g.GetChatModel())
}

func TestGenerateWithoutClient(t *testing.T) {
	g := NewGeminiAdapter(nil, GeminiConfig{ChatModel: "gemini-test"})

	_, err := g.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrGeminiUnavailable)
}

func TestNewGeminiClientWithoutKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, client)
}
