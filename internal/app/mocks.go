package app

import (
	"context"

	"ekrafmate_backend/internal/ai"
	"ekrafmate_backend/internal/email"
	"ekrafmate_backend/internal/logger"
)

// MockEmailProvider logs instead of delivering; for local development
// without SMTP credentials.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Message) error {
	logger.Info("[mock email] send", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) SendVerification(to, verifyURL string) error {
	logger.Info("[mock email] verification link", "to", to, "url", verifyURL)
	return nil
}

// MockEmbedder returns a fixed vector so search code paths stay
// exercisable without AWS credentials.
type MockEmbedder struct{}

func (m *MockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{0.1, 0.2, 0.3}, nil
}

type MockGenerator struct{}

func (m *MockGenerator) Generate(_ context.Context, _ string, _ ai.GenerationConfig) (string, error) {
	return "This is placeholder text generated without an AI backend.", nil
}
