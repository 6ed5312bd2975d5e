package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	ProjectHandler *ProjectHandler
	SearchHandler  *SearchHandler
	ChatbotHandler *ChatbotHandler
	AdminHandler   *AdminHandler
}
