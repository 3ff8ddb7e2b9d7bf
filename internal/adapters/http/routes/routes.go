package routes

import (
	"rolehub/internal/adapters/http/handlers"
	"rolehub/internal/adapters/http/middleware"
	"rolehub/internal/adapters/persistence/repositories"
	"rolehub/internal/config"
	"rolehub/internal/core/domain"
	"rolehub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	requestRepo := repositories.NewRequestRepository(db)

	// Initialize services
	mailService := services.NewMailService(cfg)
	authService := services.NewAuthService(userRepo, mailService, cfg)
	userService := services.NewUserService(userRepo)
	requestService := services.NewRequestService(requestRepo, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	requestHandler := handlers.NewRequestHandler(requestService)

	// Health & docs
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	// User routes
	users := api.Group("/users")
	users.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	users.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	users.Post("/verification-code/send", middleware.StrictRateLimiter(), authHandler.SendVerificationCode)
	users.Post("/verification-code/verify", middleware.StrictRateLimiter(), authHandler.VerifyVerificationCode)
	users.Post("/password/reset", middleware.StrictRateLimiter(), authHandler.ResetPassword)

	// Own-account routes (any signed-in user)
	users.Get("/me", middleware.AuthMiddleware(cfg), userHandler.GetMe)
	users.Put("/me", middleware.AuthMiddleware(cfg), userHandler.UpdateMe)
	users.Put("/me/password", middleware.AuthMiddleware(cfg), userHandler.ChangeMyPassword)
	users.Delete("/me", middleware.AuthMiddleware(cfg), userHandler.DeleteMe)

	// Admin user management
	users.Get("/", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), userHandler.ListUsers)
	users.Get("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), userHandler.GetUser)
	users.Put("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), userHandler.UpdateUser)
	users.Delete("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), userHandler.DeleteUser)

	// Role-change request routes (all require a signed-in user)
	requests := api.Group("/requests", middleware.AuthMiddleware(cfg))

	// Own-request routes must register before the /:id admin routes so
	// that "mine" is not captured as an id parameter.
	requests.Get("/mine", requestHandler.ListMyRequests)
	requests.Get("/mine/:id", requestHandler.GetMyRequest)
	requests.Put("/mine/:id", requestHandler.UpdateMyRequest)
	requests.Delete("/mine/:id", requestHandler.DeleteMyRequest)

	requests.Post("/", middleware.RoleMiddleware(domain.RoleUser), requestHandler.CreateRequest)
	requests.Get("/", middleware.AdminOnly(), requestHandler.ListRequests)
	requests.Get("/:id", middleware.AdminOnly(), requestHandler.GetRequest)
	requests.Put("/:id", middleware.AdminOnly(), requestHandler.UpdateRequestStatus)
	requests.Delete("/:id", middleware.AdminOnly(), requestHandler.DeleteRequest)

	// 404 for unknown routes
	app.Use(func(c *fiber.Ctx) error {
		return domain.NotFound("api is not found")
	})
}
