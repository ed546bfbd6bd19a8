package provider

import (
	"fmt"

	"github.com/botivate/troubleshoot/pkg/config"
	"github.com/botivate/troubleshoot/pkg/llm/openai"
	"github.com/botivate/troubleshoot/pkg/llm/openrouter"
)

// New builds the completion client selected by cfg.LLMProvider.
func New(cfg config.Config) (*openai.Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI, "":
		return openai.New(openai.Config{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.OpenAIModel,
			Temperature: cfg.LLMTemperature,
		}), nil
	case config.ProviderOpenRouter:
		return openrouter.New(openrouter.Config{
			APIKey:      cfg.OpenRouterAPIKey,
			BaseURL:     cfg.OpenRouterBase,
			Model:       cfg.OpenRouterModel,
			Temperature: cfg.LLMTemperature,
			AppTitle:    cfg.OpenRouterAppTitle,
			Referer:     cfg.OpenRouterReferer,
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}
