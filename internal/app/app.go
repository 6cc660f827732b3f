package app

import (
	"fmt"
	"time"

	"skinfeed_backend/internal/analysisclient"
	"skinfeed_backend/internal/config"
	"skinfeed_backend/internal/handlers"
	"skinfeed_backend/internal/imageprocessor"
	"skinfeed_backend/internal/logger"
	"skinfeed_backend/internal/middleware"
	"skinfeed_backend/internal/models"
	"skinfeed_backend/internal/repositories"
	"skinfeed_backend/internal/routes"
	"skinfeed_backend/internal/services"
	"skinfeed_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

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

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// AutoMigrate brings the schema up to date. Tests reuse it against an
// in-memory database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ProfilePicture{},
		&models.Post{},
		&models.PostImage{},
		&models.Like{},
		&models.Comment{},
		&models.Product{},
		&models.SkinAnalysisScore{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	ginRouter.MaxMultipartMemory = cfg.Upload.MaxSize

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	postRepo := repositories.NewPostRepository()
	mediaRepo := repositories.NewMediaRepository()
	productRepo := repositories.NewProductRepository()
	analysisRepo := repositories.NewAnalysisRepository()

	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)

	client, err := analysisclient.New(cfg.Analysis.URL, time.Duration(cfg.Analysis.TimeoutSeconds)*time.Second)
	if err != nil {
		logger.Fatal("Invalid analysis service endpoint", "url", cfg.Analysis.URL, "error", err)
	}

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo),
		PostService:     services.NewPostService(postRepo, mediaRepo, userRepo, processor),
		MediaService:    services.NewMediaService(mediaRepo, postRepo, userRepo, processor),
		ProductService:  services.NewProductService(productRepo, userRepo),
		AnalysisService: services.NewAnalysisService(analysisRepo, userRepo, client),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, services.AuthService),
		PostHandler:     handlers.NewPostHandler(baseHandler, services.PostService),
		MediaHandler:    handlers.NewMediaHandler(baseHandler, services.MediaService),
		ProductHandler:  handlers.NewProductHandler(baseHandler, services.ProductService),
		AnalysisHandler: handlers.NewAnalysisHandler(baseHandler, services.AnalysisService),
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
