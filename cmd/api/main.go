package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"kenshi-webspace/internal/config"
	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/handler"
	"kenshi-webspace/internal/logger"
	"kenshi-webspace/internal/middleware"
	"kenshi-webspace/internal/repository"
	"kenshi-webspace/internal/service"
	"kenshi-webspace/internal/service/objectstore"
	"kenshi-webspace/internal/service/user"
)

func main() {
	// A missing .env is fine; deployment sets real environment variables.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Environment)
	log := logger.L()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MinIO")
	}
	store := objectstore.NewMinIOStore(minioClient, cfg)

	repos := repository.NewRepositories(db)
	txm := repository.NewTxManager(db)
	services := service.NewServices(repos, txm, redisClient, store, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, fcm-service-type",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, cfg, handlers, services.User)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info().Str("port", port).Str("cors", cfg.CORSOrigins).Msg("Server starting")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func setupRoutes(app *fiber.App, cfg *config.Config, h *handler.Handlers, userService user.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Pong 🏓"})
	})

	authRequired := middleware.AuthRequired(cfg, userService)

	// Webhooks verify the raw body themselves; no auth middleware here.
	users := app.Group("/users")
	users.Post("/create", h.User.HandleWebhook)
	users.Post("/delete", h.User.HandleWebhook)

	posts := app.Group("/posts")
	posts.Post("/new/:authorId", authRequired, h.Post.Create)
	posts.Get("/user-posts/:userId", authRequired, h.Post.ListByAuthor)
	posts.Get("/:postId", h.Post.Get)
	posts.Get("/", h.Post.List)
	posts.Delete("/:postId", authRequired, h.Post.Delete)
	posts.Patch("/:postId", authRequired, middleware.RequireRole(domain.RoleUser), h.Post.Update)
	posts.Put("/likes/:postId", authRequired, h.Post.ToggleLike)
	posts.Put("/views/:postId", h.Post.CountView)
	posts.Put("/bookmarks/:postId", authRequired, h.Post.ToggleBookmark)

	media := app.Group("/media")
	media.Post("/upload/image", authRequired, h.Media.UploadImage)

	services := app.Group("/services")
	services.Post("/fcm-token", authRequired, h.Notification.RegisterToken)
}
