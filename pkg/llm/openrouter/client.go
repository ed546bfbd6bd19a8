package openrouter

import (
	"net/http"

	"github.com/botivate/troubleshoot/pkg/llm/openai"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o-mini"
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	// AppTitle and Referer are sent as the attribution headers OpenRouter understands.
	AppTitle string
	Referer  string
}

// New returns an OpenAI-compatible client pointed at OpenRouter.
func New(cfg Config) *openai.Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return openai.New(openai.Config{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		HTTPClient: &http.Client{
			Transport: &headerTransport{
				base:     http.DefaultTransport,
				appTitle: cfg.AppTitle,
				referer:  cfg.Referer,
			},
		},
	})
}

type headerTransport struct {
	base     http.RoundTripper
	appTitle string
	referer  string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer == "" && t.appTitle == "" {
		return t.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.appTitle != "" {
		req.Header.Set("X-Title", t.appTitle)
	}
	return t.base.RoundTrip(req)
}
