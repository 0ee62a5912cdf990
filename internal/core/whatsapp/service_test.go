package whatsapp

import (
	"context"
	"fmt"
	"testing"
)

type stubProvider struct {
	connected    bool
	connectErr   error
	disconnected bool
	sentTo       string
	sentBody     string
	keepAliveCtx context.Context
}

func (s *stubProvider) Connect() error {
	if s.connectErr != nil {
		return s.connectErr
	}
	s.connected = true
	return nil
}

func (s *stubProvider) Disconnect() {
	s.connected = false
	s.disconnected = true
}

func (s *stubProvider) SendMessage(phoneNumber, message string) error {
	if !s.connected {
		return fmt.Errorf("not connected")
	}
	s.sentTo = phoneNumber
	s.sentBody = message
	return nil
}

func (s *stubProvider) GenerateQR() ([]byte, error) { return []byte("png"), nil }

func (s *stubProvider) IsConnected() bool { return s.connected }

func (s *stubProvider) StartKeepAlive(ctx context.Context) { s.keepAliveCtx = ctx }

func (s *stubProvider) GetProviderName() string { return "Stub" }

func TestServiceSessionLifecycle(t *testing.T) {
	stub := &stubProvider{}
	svc := NewServiceWithProvider(stub)

	if svc.IsConnected() {
		t.Fatal("IsConnected() = true before Connect")
	}

	if err := svc.Connect(); err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if !svc.IsConnected() {
		t.Error("IsConnected() = false after Connect")
	}

	ctx := context.Background()
	svc.StartKeepAlive(ctx)
	if stub.keepAliveCtx != ctx {
		t.Error("StartKeepAlive did not reach the provider")
	}

	svc.Disconnect()
	if !stub.disconnected || svc.IsConnected() {
		t.Error("Disconnect did not reach the provider")
	}
}

func TestServiceConnectFailure(t *testing.T) {
	stub := &stubProvider{connectErr: fmt.Errorf("no paired session")}
	svc := NewServiceWithProvider(stub)

	if err := svc.Connect(); err == nil {
		t.Fatal("Connect() = nil, want the provider's error")
	}
	if svc.IsConnected() {
		t.Error("IsConnected() = true after failed Connect")
	}
}

func TestServiceSendMessage(t *testing.T) {
	stub := &stubProvider{}
	svc := NewServiceWithProvider(stub)

	if err := svc.SendMessage("6281234567890", "hi"); err == nil {
		t.Error("SendMessage() = nil on a disconnected session, want error")
	}

	if err := svc.Connect(); err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if err := svc.SendMessage("6281234567890", "hi"); err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if stub.sentTo != "6281234567890" || stub.sentBody != "hi" {
		t.Errorf("provider got (%q, %q), want the service's arguments", stub.sentTo, stub.sentBody)
	}

	if svc.GetProviderName() != "Stub" {
		t.Errorf("GetProviderName() = %q, want %q", svc.GetProviderName(), "Stub")
	}
}
