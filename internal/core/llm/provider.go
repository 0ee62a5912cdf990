package llm

import (
	"context"
	"fmt"
	"os"
)

// Provider interface for AI chat completion backends
type Provider interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GetProviderName() string
}

// ProviderType for factory
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGroq   ProviderType = "groq"
)

// ProviderConfig to create a provider
type ProviderConfig struct {
	Type ProviderType

	OpenAIKey string
	GroqKey   string

	Model       string
	Temperature float32
	MaxTokens   int
}

// NewProvider factory to create an LLM provider
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg), nil

	case ProviderGroq:
		if cfg.GroqKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required")
		}
		return NewGroqProvider(cfg), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}

// LoadProviderFromEnv loads config from environment variables
func LoadProviderFromEnv() (*ProviderConfig, error) {
	providerType := os.Getenv("LLM_PROVIDER")
	if providerType == "" {
		providerType = "openai" // default
	}

	cfg := &ProviderConfig{
		Type:      ProviderType(providerType),
		OpenAIKey: os.Getenv("OPENAI_API_KEY"),
		GroqKey:   os.Getenv("GROQ_API_KEY"),
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		cfg.Model = model
	} else {
		switch cfg.Type {
		case ProviderOpenAI:
			cfg.Model = "gpt-4o-mini"
		case ProviderGroq:
			cfg.Model = "llama-3.1-70b-versatile"
		}
	}

	cfg.Temperature = 0.7
	cfg.MaxTokens = 1024

	return cfg, nil
}

// resolveProviderConfig loads the env config and lets the application config
// supply the OpenAI key, so the key travels through one place.
func resolveProviderConfig(openAIKey string) (*ProviderConfig, error) {
	cfg, err := LoadProviderFromEnv()
	if err != nil {
		return nil, err
	}
	if openAIKey != "" {
		cfg.OpenAIKey = openAIKey
	}
	return cfg, nil
}
