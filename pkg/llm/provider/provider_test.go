package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botivate/troubleshoot/pkg/config"
	"github.com/botivate/troubleshoot/pkg/llm"
	"github.com/botivate/troubleshoot/pkg/llm/openai"
	"github.com/botivate/troubleshoot/pkg/llm/openrouter"
)

func TestNew(t *testing.T) {
	c, err := New(config.Config{LLMProvider: config.ProviderOpenAI, OpenAIModel: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", c.Model())

	c, err = New(config.Config{})
	require.NoError(t, err)
	assert.Equal(t, openai.DefaultModel, c.Model())

	c, err = New(config.Config{LLMProvider: config.ProviderOpenRouter})
	require.NoError(t, err)
	assert.Equal(t, openrouter.DefaultModel, c.Model())

	_, err = New(config.Config{LLMProvider: "bedrock"})
	assert.Error(t, err)
}

func TestNewOpenRouterUsesConfiguredTemperature(t *testing.T) {
	var temperature float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Temperature float64 `json:"temperature"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		temperature = body.Temperature
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "ok"}}},
		})
	}))
	defer srv.Close()

	c, err := New(config.Config{
		LLMProvider:      config.ProviderOpenRouter,
		LLMTemperature:   0.7,
		OpenRouterAPIKey: "key",
		OpenRouterBase:   srv.URL,
	})
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	require.NoError(t, err)
	assert.InDelta(t, 0.7, temperature, 1e-6)
}
