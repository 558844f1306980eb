package router

import (
	"github.com/avoronin/postline/backend/internal/handlers"
	"github.com/avoronin/postline/backend/internal/middleware"
	"github.com/avoronin/postline/backend/internal/models"
	"github.com/avoronin/postline/backend/internal/monitoring"
	"github.com/avoronin/postline/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(monitoring.InstrumentHandler())
	logrus.Info("Global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client) {
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
		&models.Notification{},
	)
	if err != nil {
		logrus.Fatalf("Failed to auto migrate models: %v", err)
	}
	logrus.Info("PostgreSQL auto-migrations completed for all models")

	// Always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", monitoring.MetricsHandler())

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	groupRepo := repositories.NewPostgresGroupRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	mediaRepo := repositories.NewMongoMediaRepository(mgClient.Database("postline"))

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	logrus.Info("Auth routes configured")

	// Public reads carry optional identity; writes and the personal feed
	// sit behind the required JWT guard.
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTAuthMiddleware())

	protected := e.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware())

	userHandler := handlers.NewUserHandler(userRepo, postRepo, followRepo)
	userHandler.RegisterUserRoutes(public, protected)
	logrus.Info("User profile routes configured")

	groupHandler := handlers.NewGroupHandler(groupRepo, postRepo, userRepo)
	groupHandler.RegisterGroupRoutes(public, protected)
	logrus.Info("Group routes configured")

	postHandler := handlers.NewPostHandler(postRepo, userRepo, groupRepo, commentRepo, mediaRepo)
	postHandler.RegisterPostRoutes(public, protected)
	logrus.Info("Post routes configured")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo, notificationRepo)
	commentHandler.RegisterCommentRoutes(public, protected)
	logrus.Info("Comment routes configured")

	feedHandler := handlers.NewFeedHandler(postRepo, userRepo, followRepo)
	feedHandler.RegisterFeedRoutes(protected)
	logrus.Info("Feed routes configured")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, notificationRepo)
	followHandler.RegisterFollowRoutes(protected)
	logrus.Info("Follow routes configured")

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(protected)
	logrus.Info("Notification routes configured")

	mediaHandler := handlers.NewMediaHandler(mediaRepo)
	mediaHandler.RegisterMediaRoutes(public, protected)
	logrus.Info("Media routes configured")

	logrus.Info("All routes configured")
}
