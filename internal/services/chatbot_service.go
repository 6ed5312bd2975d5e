package services

import (
	"context"
	"fmt"
	"strings"

	"ekrafmate_backend/internal/ai"
	"ekrafmate_backend/internal/logger"
	"ekrafmate_backend/internal/services/dto"
)

// Fixed persona preamble. The assistant is stateless per request: the
// client supplies the whole turn history and persists it itself.
const chatbotSystemPrompt = `You are "MateBot", a friendly and highly helpful virtual assistant for the EkrafMate platform. EkrafMate is a marketplace that connects creative professionals (such as designers, writers, and videographers) with clients who need their services. Your job is to answer user questions about how the platform works, help resolve problems, and provide guidance. Always answer in a professional yet friendly tone.`

// ChatFallbackMessage is returned when the generation service fails.
// The chatbot degrades to this canned reply instead of surfacing an
// error code.
const ChatFallbackMessage = "Sorry, I'm having trouble answering right now. Please try again in a moment."

type ChatbotService interface {
	Respond(ctx context.Context, req *dto.ChatRequest) string
}

type ChatbotServiceImpl struct {
	genAI ai.Generator
}

func NewChatbotService(genAI ai.Generator) ChatbotService {
	return &ChatbotServiceImpl{genAI: genAI}
}

// Respond builds the full prompt from persona, history and the new user
// turn, and bounds the generated span with a stop sequence on the next
// "User:" marker.
func (s *ChatbotServiceImpl) Respond(ctx context.Context, req *dto.ChatRequest) string {
	prompt := BuildChatPrompt(req.Prompt, req.History)

	cfg := ai.DefaultGenerationConfig()
	cfg.StopSequences = []string{"User:"}

	text, err := s.genAI.Generate(ctx, prompt, cfg)
	if err != nil {
		logger.CtxWarn(ctx, "chatbot generation failed", "error", err.Error())
		return ChatFallbackMessage
	}
	return strings.TrimSpace(text)
}

// BuildChatPrompt serializes history as alternating "User:"/"Assistant:"
// lines between the persona preamble and the new prompt.
func BuildChatPrompt(userPrompt string, history []dto.ChatTurn) string {
	var sb strings.Builder

	for i, turn := range history {
		role := "Assistant"
		if turn.Role == "user" {
			role = "User"
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", role, turn.Content))
	}

	return fmt.Sprintf(
		"%s\n\nHere is the conversation so far:\n%s\n\nUser: %s\nAssistant:",
		chatbotSystemPrompt, sb.String(), userPrompt,
	)
}
