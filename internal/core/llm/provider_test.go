package llm

import (
	"context"
	"testing"
)

func TestLoadProviderFromEnvDefaults(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		model     string
		wantType  ProviderType
		wantModel string
	}{
		{"defaults to openai", "", "", ProviderOpenAI, "gpt-4o-mini"},
		{"groq default model", "groq", "", ProviderGroq, "llama-3.1-70b-versatile"},
		{"explicit model wins", "openai", "gpt-4o", ProviderOpenAI, "gpt-4o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LLM_PROVIDER", tt.provider)
			t.Setenv("LLM_MODEL", tt.model)

			cfg, err := LoadProviderFromEnv()
			if err != nil {
				t.Fatalf("LoadProviderFromEnv() error: %v", err)
			}
			if cfg.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", cfg.Type, tt.wantType)
			}
			if cfg.Model != tt.wantModel {
				t.Errorf("Model = %q, want %q", cfg.Model, tt.wantModel)
			}
			if cfg.Temperature != 0.7 || cfg.MaxTokens != 1024 {
				t.Errorf("limits = (%v, %d), want (0.7, 1024)", cfg.Temperature, cfg.MaxTokens)
			}
		})
	}
}

func TestResolveProviderConfigKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg, err := resolveProviderConfig("sk-from-config")
	if err != nil {
		t.Fatalf("resolveProviderConfig() error: %v", err)
	}
	if cfg.OpenAIKey != "sk-from-config" {
		t.Errorf("OpenAIKey = %q, want the application config key", cfg.OpenAIKey)
	}

	cfg, err = resolveProviderConfig("")
	if err != nil {
		t.Fatalf("resolveProviderConfig() error: %v", err)
	}
	if cfg.OpenAIKey != "sk-from-env" {
		t.Errorf("OpenAIKey = %q, want the env fallback", cfg.OpenAIKey)
	}
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ProviderConfig
		wantName string
		wantErr  bool
	}{
		{"openai", ProviderConfig{Type: ProviderOpenAI, OpenAIKey: "sk-test"}, "OpenAI", false},
		{"groq", ProviderConfig{Type: ProviderGroq, GroqKey: "gsk-test"}, "Groq", false},
		{"openai without key", ProviderConfig{Type: ProviderOpenAI}, "", true},
		{"groq without key", ProviderConfig{Type: ProviderGroq}, "", true},
		{"unknown type", ProviderConfig{Type: "claude"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewProvider() = nil error, want failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider() error: %v", err)
			}
			if p.GetProviderName() != tt.wantName {
				t.Errorf("GetProviderName() = %q, want %q", p.GetProviderName(), tt.wantName)
			}
		})
	}
}

type stubChatProvider struct {
	lastSystem string
	lastUser   string
	reply      string
}

func (s *stubChatProvider) GenerateResponse(_ context.Context, systemPrompt, userMessage string) (string, error) {
	s.lastSystem = systemPrompt
	s.lastUser = userMessage
	return s.reply, nil
}

func (s *stubChatProvider) GetProviderName() string { return "Stub" }

func TestServiceDelegatesToProvider(t *testing.T) {
	stub := &stubChatProvider{reply: "hello"}
	svc := NewServiceWithProvider(stub)

	reply, err := svc.GenerateResponse(context.Background(), "be helpful", "hi")
	if err != nil {
		t.Fatalf("GenerateResponse() error: %v", err)
	}
	if reply != "hello" {
		t.Errorf("reply = %q, want %q", reply, "hello")
	}
	if stub.lastSystem != "be helpful" || stub.lastUser != "hi" {
		t.Errorf("provider got (%q, %q), want the service's arguments", stub.lastSystem, stub.lastUser)
	}
	if svc.GetProviderName() != "Stub" {
		t.Errorf("GetProviderName() = %q, want %q", svc.GetProviderName(), "Stub")
	}
}
