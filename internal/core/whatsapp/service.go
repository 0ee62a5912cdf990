package whatsapp

import (
	"context"
	"log"
)

// Service is the application-facing wrapper around a WhatsApp provider.
type Service struct {
	provider Provider
}

// NewService creates a service with the provider from environment
func NewService(storeURL string) *Service {
	cfg, err := LoadProviderFromEnv()
	if err != nil {
		log.Fatalf("❌ Failed to load provider config: %v", err)
	}

	// Override storeURL when given
	if storeURL != "" {
		cfg.StoreURL = storeURL
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create provider: %v", err)
	}

	log.Printf("✅ Using WhatsApp provider: %s", provider.GetProviderName())

	return &Service{provider: provider}
}

// NewServiceWithProvider creates a service with a specific provider (for testing)
func NewServiceWithProvider(provider Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) Connect() error {
	return s.provider.Connect()
}

func (s *Service) Disconnect() {
	s.provider.Disconnect()
}

func (s *Service) SendMessage(phoneNumber, message string) error {
	return s.provider.SendMessage(phoneNumber, message)
}

func (s *Service) GenerateQR() ([]byte, error) {
	return s.provider.GenerateQR()
}

func (s *Service) IsConnected() bool {
	return s.provider.IsConnected()
}

func (s *Service) StartKeepAlive(ctx context.Context) {
	s.provider.StartKeepAlive(ctx)
}

func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
