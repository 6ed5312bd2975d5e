package services

import "ekrafmate_backend/internal/email"

// ServiceContainer bundles every service for wiring in internal/app.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	ProjectService ProjectService
	SearchService  SearchService
	ChatbotService ChatbotService
	AdminService   AdminService
	EmailService   email.Provider
}
