package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"alerto-backend/internal/config"
	"alerto-backend/internal/handler"
	"alerto-backend/internal/middleware"
	"alerto-backend/internal/repository"
	"alerto-backend/internal/service"
	"alerto-backend/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (caching disabled)", err)
		redis = nil
	}
	if redis != nil {
		defer redis.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (attachment upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/logout", h.Auth.Logout)
	authGroup.Post("/forgot-password", h.Auth.ForgotPassword)
	authGroup.Post("/reset-password", h.Auth.ResetPassword)
	authGroup.Get("/verify-email", h.Auth.VerifyEmail)
	authGroup.Post("/resend-verification", h.Auth.ResendVerification)

	// Public map data: anyone can see zones, facilities and
	// announcements without an account.
	v1.Get("/zones", h.Zone.List)
	v1.Get("/zones/:id", h.Zone.GetByID)
	v1.Get("/facilities", h.Facility.List)
	v1.Get("/facilities/:id", h.Facility.GetByID)
	v1.Get("/announcements", h.Announcement.List)
	v1.Get("/announcements/:id", h.Announcement.GetByID)

	protected := v1.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.Auth.Me)
	users.Put("/me", h.User.UpdateProfile)
	users.Put("/me/phone-number", h.User.UpdatePhoneNumber)
	users.Put("/me/password", h.User.UpdatePassword)
	users.Delete("/me", h.User.DeleteAccount)

	locations := protected.Group("/locations")
	locations.Post("/", h.Location.Create)
	locations.Get("/", h.Location.List)
	locations.Get("/:id", h.Location.GetByID)
	locations.Put("/:id", h.Location.Update)
	locations.Delete("/:id", h.Location.Delete)
	locations.Get("/:id/history", h.Location.History)

	protected.Get("/zones/:id/discussion", h.Discussion.GetByZone)

	discussions := protected.Group("/discussions")
	discussions.Get("/", h.Discussion.List)
	discussions.Get("/:id", h.Discussion.GetByID)
	discussions.Post("/:id/comments", h.Discussion.AddComment)
	discussions.Put("/comments/:commentId", h.Discussion.UpdateComment)
	discussions.Delete("/comments/:commentId", h.Discussion.DeleteComment)
	discussions.Post("/comments/:commentId/attachments", h.Discussion.UploadAttachment)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Put("/:id/read", h.Notification.MarkAsRead)
	notifications.Put("/read-all", h.Notification.MarkAllAsRead)

	weatherGroup := protected.Group("/weather")
	weatherGroup.Get("/current", h.Weather.Current)
	weatherGroup.Get("/forecast", h.Weather.Forecast)

	admin := protected.Group("", middleware.RequireAdmin())

	admin.Post("/zones", h.Zone.Create)
	admin.Put("/zones/:id", h.Zone.Update)
	admin.Put("/zones/:id/status", h.Zone.ChangeStatus)
	admin.Delete("/zones/:id", h.Zone.Delete)
	admin.Get("/zones/:id/affected", h.Zone.AffectedLocations)

	admin.Post("/facilities", h.Facility.Create)
	admin.Put("/facilities/:id", h.Facility.Update)
	admin.Delete("/facilities/:id", h.Facility.Delete)

	admin.Post("/announcements", h.Announcement.Create)
	admin.Put("/announcements/:id", h.Announcement.Update)
	admin.Delete("/announcements/:id", h.Announcement.Delete)

	admin.Get("/dashboard/stats", h.Dashboard.Stats)
}
