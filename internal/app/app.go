package app

import (
	"errors"
	"fmt"

	"ekrafmate_backend/internal/ai"
	"ekrafmate_backend/internal/auth"
	"ekrafmate_backend/internal/config"
	"ekrafmate_backend/internal/email"
	"ekrafmate_backend/internal/handlers"
	"ekrafmate_backend/internal/logger"
	"ekrafmate_backend/internal/middleware"
	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/internal/repositories"
	"ekrafmate_backend/internal/routes"
	"ekrafmate_backend/internal/services"
	"ekrafmate_backend/internal/validator"
	"ekrafmate_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	apperrors.SetDebug(cfg.Server.Env != "production")

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.PortfolioItem{},
		&models.Project{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// initializeServices wires repositories, external providers and services.
// Missing SMTP or AWS credentials downgrade the respective provider to a
// mock so local development works without either.
func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	smtpProvider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("SMTP is not configured. Emails are logged, not delivered.", "error", err.Error())
		emailService = &MockEmailProvider{}
	} else {
		emailService = smtpProvider
	}

	var embedder ai.Embedder
	var generator ai.Generator
	bedrockClient, err := ai.NewBedrockClient(ai.Config{
		Region:           cfg.Bedrock.Region,
		AccessKey:        cfg.Bedrock.AccessKey,
		SecretKey:        cfg.Bedrock.SecretKey,
		EmbeddingModelID: cfg.Bedrock.EmbeddingModelID,
		TextModelID:      cfg.Bedrock.TextModelID,
	})
	if err != nil {
		logger.Warn("Bedrock is not configured. AI features use a mock.", "error", err.Error())
		embedder = &MockEmbedder{}
		generator = &MockGenerator{}
	} else {
		embedder = bedrockClient
		generator = bedrockClient
	}

	userRepo := repositories.NewUserRepository()
	projectRepo := repositories.NewProjectRepository()

	authService := services.NewAuthService(userRepo, emailService, cfg.Frontend.URL)
	userService := services.NewUserService(userRepo, embedder, generator)
	projectService := services.NewProjectService(projectRepo, userRepo, embedder, generator)
	searchService := services.NewSearchService(userRepo, projectRepo, embedder)
	chatbotService := services.NewChatbotService(generator)
	adminService := services.NewAdminService(userRepo, projectRepo)

	return &services.ServiceContainer{
		AuthService:    authService,
		UserService:    userService,
		ProjectService: projectService,
		SearchService:  searchService,
		ChatbotService: chatbotService,
		AdminService:   adminService,
		EmailService:   emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:    handlers.NewUserHandler(baseHandler, services.UserService),
		ProjectHandler: handlers.NewProjectHandler(baseHandler, services.ProjectService),
		SearchHandler:  handlers.NewSearchHandler(baseHandler, services.SearchService),
		ChatbotHandler: handlers.NewChatbotHandler(baseHandler, services.ChatbotService),
		AdminHandler:   handlers.NewAdminHandler(baseHandler, services.AdminService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the bootstrap admin account on first start. The
// seed is skipped when credentials are absent or the account exists.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdmin.Email
	adminPassword := cfg.FirstAdmin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := cfg.FirstAdmin.Name
	if name == "" {
		name = "Administrator"
	}
	username := cfg.FirstAdmin.Username
	if username == "" {
		username = "admin"
	}

	newAdmin := &models.User{
		Name:         name,
		Username:     username,
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		IsVerified:   true,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
