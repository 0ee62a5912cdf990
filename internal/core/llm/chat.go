package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// ChatProvider serves preview requests through an OpenAI-compatible chat API.
// Groq exposes the same wire format behind a different base URL, so a single
// implementation covers both backends.
type ChatProvider struct {
	name        string
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func newChatProvider(name string, client *openai.Client, cfg *ProviderConfig) *ChatProvider {
	return &ChatProvider{
		name:        name,
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// NewOpenAIProvider creates the OpenAI-backed provider. Model and limit
// defaults are resolved by LoadProviderFromEnv, never here.
func NewOpenAIProvider(cfg *ProviderConfig) *ChatProvider {
	return newChatProvider("OpenAI", openai.NewClient(cfg.OpenAIKey), cfg)
}

// NewGroqProvider creates the Groq-backed provider via Groq's
// OpenAI-compatible endpoint.
func NewGroqProvider(cfg *ProviderConfig) *ChatProvider {
	clientCfg := openai.DefaultConfig(cfg.GroqKey)
	clientCfg.BaseURL = groqBaseURL
	return newChatProvider("Groq", openai.NewClientWithConfig(clientCfg), cfg)
}

func (p *ChatProvider) GetProviderName() string {
	return p.name
}

// GenerateResponse sends a single system+user exchange and returns the reply.
// Previews are one-shot: no history, no retry.
func (p *ChatProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", strings.ToLower(p.name), err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", strings.ToLower(p.name))
	}

	return resp.Choices[0].Message.Content, nil
}
