package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const defaultOpenAIModel = "gpt-4o-mini"

var errEmptyCompletion = errors.New("completion has no choices")

// openAIClient implements LLMClient over any OpenAI-compatible chat
// completions endpoint.
type openAIClient struct {
	cfg      LLMConfig
	client   openai.Client
	observer Observer
}

// NewOpenAIClient creates an LLMClient for the OpenAI chat completions API.
// A non-empty Endpoint points it at a compatible server instead.
func NewOpenAIClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}
	cfg.Provider = ProviderOpenAI

	// Retries are counted by generate, not the SDK.
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	return &openAIClient{cfg: cfg, client: openai.NewClient(opts...), observer: observer}
}

func (c *openAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	temp, maxTok := c.cfg.sampling(req)

	var messages []openai.ChatCompletionMessageParamUnion
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.UserPrompt))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.cfg.Model),
		Messages:    messages,
		Temperature: openai.Float(temp),
	}
	if maxTok > 0 {
		params.MaxCompletionTokens = openai.Int(int64(maxTok))
	}
	if req.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	return generate(ctx, c.cfg, c.observer, req.Task, func(ctx context.Context) (string, string, error) {
		completion, err := c.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return "", "", err
		}
		if len(completion.Choices) == 0 {
			return "", "", errEmptyCompletion
		}
		return completion.Choices[0].Message.Content, completion.Model, nil
	})
}

// Available only checks that a key is configured; it never spends a request.
func (c *openAIClient) Available(context.Context) bool {
	return c.cfg.APIKey != ""
}
