package dto

// ChatTurn is one entry of the client-held conversation history. The
// server keeps no conversation state; the client is the source of truth.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Prompt  string     `json:"prompt" binding:"required"`
	History []ChatTurn `json:"history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
