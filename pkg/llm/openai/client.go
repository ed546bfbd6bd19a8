package openai

import (
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	goopenai "github.com/sashabaranov/go-openai"

	"github.com/botivate/troubleshoot/pkg/llm"
)

const (
	DefaultModel   = goopenai.GPT4oMini
	DefaultBaseURL = "https://api.openai.com/v1"
)

// completer is the subset of the SDK client used here; tests swap it out.
type completer interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	// HTTPClient is optional. A nil client leaves timeouts to the SDK defaults.
	HTTPClient *http.Client
}

// Client is a chat completions client for OpenAI-compatible endpoints.
type Client struct {
	cfg Config
	api completer
}

func New(cfg Config) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	sdkCfg := goopenai.DefaultConfig(cfg.APIKey)
	sdkCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPClient != nil {
		sdkCfg.HTTPClient = cfg.HTTPClient
	}
	return &Client{cfg: cfg, api: goopenai.NewClientWithConfig(sdkCfg)}
}

// Model returns the model identifier requests are sent with.
func (c *Client) Model() string { return c.cfg.Model }

// Complete sends the whole prompt context in one request and returns the
// first choice's text.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return "", errors.Wrapf(llm.ErrUnavailable, "missing API key for %s", c.cfg.BaseURL)
	}

	req := goopenai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    toSDKMessages(messages),
		Temperature: temperature(c.cfg.Temperature),
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "create chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.Wrap(llm.ErrEmptyResponse, "no choices returned by model")
	}
	return resp.Choices[0].Message.Content, nil
}

// temperature maps 0 to the smallest positive value: the SDK drops a zero
// temperature from the payload and the provider would fall back to 1.
func temperature(t float32) float32 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

func toSDKMessages(messages []llm.Message) []goopenai.ChatCompletionMessage {
	out := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := goopenai.ChatMessageRoleUser
		switch m.Role {
		case llm.RoleSystem:
			role = goopenai.ChatMessageRoleSystem
		case llm.RoleAssistant:
			role = goopenai.ChatMessageRoleAssistant
		}
		out = append(out, goopenai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}
