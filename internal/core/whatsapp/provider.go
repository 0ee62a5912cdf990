package whatsapp

import (
	"context"
	"fmt"
	"os"
)

// Provider is the interface every WhatsApp channel backend implements.
type Provider interface {
	// Connect initializes the WhatsApp connection
	Connect() error

	// Disconnect closes the connection
	Disconnect()

	// SendMessage sends a text message to a phone number
	SendMessage(phoneNumber, message string) error

	// GenerateQR generates a pairing QR code (returns PNG bytes)
	GenerateQR() ([]byte, error)

	// IsConnected reports whether the client session is live
	IsConnected() bool

	// StartKeepAlive maintains the session until ctx is cancelled
	StartKeepAlive(ctx context.Context)

	// GetProviderName returns the provider name for logging
	GetProviderName() string
}

// ProviderType for factory
type ProviderType string

const (
	ProviderWhatsmeow ProviderType = "whatsmeow"
)

// ProviderConfig holds provider construction options
type ProviderConfig struct {
	Type     ProviderType
	StoreURL string
}

// NewProvider creates a provider from config
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case ProviderWhatsmeow:
		return NewWhatsmeowProvider(cfg.StoreURL), nil
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

// LoadProviderFromEnv loads provider config from environment variables
func LoadProviderFromEnv() (*ProviderConfig, error) {
	providerType := os.Getenv("WHATSAPP_PROVIDER")
	if providerType == "" {
		providerType = "whatsmeow" // default
	}

	return &ProviderConfig{
		Type:     ProviderType(providerType),
		StoreURL: os.Getenv("WHATSAPP_STORE_URL"),
	}, nil
}
