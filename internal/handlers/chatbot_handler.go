package handlers

import (
	"net/http"

	"ekrafmate_backend/internal/middleware"
	"ekrafmate_backend/internal/services"
	"ekrafmate_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ChatbotHandler struct {
	*BaseHandler
	chatbotService services.ChatbotService
}

func NewChatbotHandler(base *BaseHandler, chatbotService services.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{
		BaseHandler:    base,
		chatbotService: chatbotService,
	}
}

func (h *ChatbotHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chatbot := rg.Group("/chatbot")
	chatbot.Use(middleware.AuthMiddleware())
	{
		chatbot.POST("", h.Chat)
	}
}

// Chat always answers 200: when generation fails the service substitutes
// its canned fallback reply.
func (h *ChatbotHandler) Chat(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.ChatRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	reply := h.chatbotService.Respond(c.Request.Context(), &req)

	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}
