package services

import (
	"context"
	"strings"
	"testing"

	"ekrafmate_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
)

func TestBuildChatPrompt(t *testing.T) {
	history := []dto.ChatTurn{
		{Role: "user", Content: "How do I post a project?"},
		{Role: "assistant", Content: "Go to your dashboard and click New Project."},
	}

	prompt := BuildChatPrompt("What does it cost?", history)

	assert.True(t, strings.HasPrefix(prompt, chatbotSystemPrompt))
	assert.Contains(t, prompt, "User: How do I post a project?")
	assert.Contains(t, prompt, "Assistant: Go to your dashboard and click New Project.")
	assert.True(t, strings.HasSuffix(prompt, "User: What does it cost?\nAssistant:"))

	// History order is preserved.
	assert.Less(t,
		strings.Index(prompt, "How do I post a project?"),
		strings.Index(prompt, "Go to your dashboard"),
	)
}

func TestChatbotRespond(t *testing.T) {
	generator := &fakeGenerator{text: "  Posting a project is free.\n"}
	svc := NewChatbotService(generator)

	reply := svc.Respond(context.Background(), &dto.ChatRequest{Prompt: "What does it cost?"})

	assert.Equal(t, "Posting a project is free.", reply)
	assert.Contains(t, generator.prompt, chatbotSystemPrompt)
}

func TestChatbotRespondFallsBackOnError(t *testing.T) {
	generator := &fakeGenerator{err: assert.AnError}
	svc := NewChatbotService(generator)

	reply := svc.Respond(context.Background(), &dto.ChatRequest{Prompt: "Hello?"})

	// Degrades to the canned reply, never an error response.
	assert.Equal(t, ChatFallbackMessage, reply)
}
