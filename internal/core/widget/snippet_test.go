package widget

import (
	"strings"
	"testing"
)

const origin = "https://cdn.example.com"

func TestSnippetAllDefaults(t *testing.T) {
	got := Snippet(origin, "abc123", DefaultConfig(), "")
	want := "<script src=\"https://cdn.example.com/widget.js\"\n  data-agent-id=\"abc123\">\n</script>"

	if got != want {
		t.Errorf("Snippet() = %q, want %q", got, want)
	}
}

func TestSnippetZeroConfigTreatedAsDefaults(t *testing.T) {
	// Unset string fields must not emit attributes either
	cfg := Config{ShowBranding: true}
	got := Snippet(origin, "abc123", cfg, "")

	if strings.Count(got, "data-") != 1 {
		t.Errorf("Snippet() = %q, want only the agent id attribute", got)
	}
}

func TestSnippetEachFieldAddsOneAttribute(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		attr   string
	}{
		{"display name", func(c *Config) { c.DisplayName = "Pizza Bot" }, `data-agent-name="Pizza Bot"`},
		{"primary color", func(c *Config) { c.PrimaryColor = "#ff0000" }, `data-primary-color="#ff0000"`},
		{"position", func(c *Config) { c.Position = "top-left" }, `data-position="top-left"`},
		{"avatar", func(c *Config) { c.AvatarURL = "https://a.example.com/x.png" }, `data-avatar-url="https://a.example.com/x.png"`},
		{"branding off", func(c *Config) { c.ShowBranding = false }, `data-show-branding="false"`},
		{"auto open", func(c *Config) { c.AutoOpen = true }, `data-auto-open="true"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			got := Snippet(origin, "abc123", cfg, "")
			if !strings.Contains(got, tt.attr) {
				t.Errorf("Snippet() missing %q:\n%s", tt.attr, got)
			}
			// Exactly one attribute beyond the agent id
			if n := strings.Count(got, "data-"); n != 2 {
				t.Errorf("Snippet() has %d attributes, want 2:\n%s", n, got)
			}
		})
	}
}

func TestSnippetGreeting(t *testing.T) {
	got := Snippet(origin, "abc123", DefaultConfig(), "Hello there")
	if !strings.Contains(got, `data-greeting="Hello there"`) {
		t.Errorf("Snippet() missing greeting attribute:\n%s", got)
	}
}

func TestSnippetEscapesQuotes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisplayName = `Joe's "Best" Bot`

	got := Snippet(origin, "abc123", cfg, `Say "hi"`)

	if !strings.Contains(got, `data-agent-name="Joe's &quot;Best&quot; Bot"`) {
		t.Errorf("display name quotes not escaped:\n%s", got)
	}
	if !strings.Contains(got, `data-greeting="Say &quot;hi&quot;"`) {
		t.Errorf("greeting quotes not escaped:\n%s", got)
	}
}

func TestSnippetRejectsUnknownPosition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Position = "center"

	got := Snippet(origin, "abc123", cfg, "")
	if strings.Contains(got, "data-position") {
		t.Errorf("unknown positions must be omitted:\n%s", got)
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DisplayName != "AI Assistant" || cfg.PrimaryColor != "#6366f1" || cfg.Position != "bottom-right" {
		t.Errorf("DefaultConfig() = %+v, want documented defaults", cfg)
	}
	if !cfg.ShowBranding || cfg.AutoOpen {
		t.Errorf("DefaultConfig() toggles = %+v, want ShowBranding=true AutoOpen=false", cfg)
	}
}
