package widget

import (
	"fmt"
	"strings"
)

// Documented attribute defaults. The loader applies these on its own, so the
// generated snippet never repeats them.
const (
	DefaultDisplayName  = "AI Assistant"
	DefaultPrimaryColor = "#6366f1"
	DefaultPosition     = "bottom-right"
)

var validPositions = map[string]bool{
	"bottom-right": true,
	"bottom-left":  true,
	"top-right":    true,
	"top-left":     true,
}

// Config is the widget display configuration for a website agent. Its
// lifecycle is independent from agent creation: it applies to agents that
// already exist.
type Config struct {
	DisplayName  string `json:"display_name"`
	PrimaryColor string `json:"primary_color"`
	Position     string `json:"position"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	ShowBranding bool   `json:"show_branding"`
	AutoOpen     bool   `json:"auto_open"`
}

// DefaultConfig returns a Config with every field at its documented default.
func DefaultConfig() Config {
	return Config{
		DisplayName:  DefaultDisplayName,
		PrimaryColor: DefaultPrimaryColor,
		Position:     DefaultPosition,
		ShowBranding: true,
		AutoOpen:     false,
	}
}

// Snippet renders the embeddable script tag for an agent. Optional attributes
// are emitted only when they differ from their defaults, keeping the markup
// minimal. The agent id is not validated here; that is the backend's job.
func Snippet(origin, agentID string, cfg Config, greeting string) string {
	attrs := []string{
		fmt.Sprintf(`  data-agent-id="%s"`, escapeAttr(agentID)),
	}

	if cfg.DisplayName != "" && cfg.DisplayName != DefaultDisplayName {
		attrs = append(attrs, fmt.Sprintf(`  data-agent-name="%s"`, escapeAttr(cfg.DisplayName)))
	}
	if cfg.PrimaryColor != "" && cfg.PrimaryColor != DefaultPrimaryColor {
		attrs = append(attrs, fmt.Sprintf(`  data-primary-color="%s"`, escapeAttr(cfg.PrimaryColor)))
	}
	if validPositions[cfg.Position] && cfg.Position != DefaultPosition {
		attrs = append(attrs, fmt.Sprintf(`  data-position="%s"`, cfg.Position))
	}
	if cfg.AvatarURL != "" {
		attrs = append(attrs, fmt.Sprintf(`  data-avatar-url="%s"`, escapeAttr(cfg.AvatarURL)))
	}
	if !cfg.ShowBranding {
		attrs = append(attrs, `  data-show-branding="false"`)
	}
	if cfg.AutoOpen {
		attrs = append(attrs, `  data-auto-open="true"`)
	}
	if greeting != "" {
		attrs = append(attrs, fmt.Sprintf(`  data-greeting="%s"`, escapeAttr(greeting)))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<script src=\"%s/widget.js\"\n", origin))
	sb.WriteString(strings.Join(attrs, "\n"))
	sb.WriteString(">\n</script>")
	return sb.String()
}

// escapeAttr keeps the generated HTML well-formed when values carry quotes.
func escapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}
