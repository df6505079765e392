// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"rainerio-service/internal/config"
	"rainerio-service/internal/db"
	"rainerio-service/internal/domain/vehicle"
	adminHandler "rainerio-service/internal/handlers/admin"
	authHandler "rainerio-service/internal/handlers/auth"
	catalogHandler "rainerio-service/internal/handlers/catalog"
	eventsHandler "rainerio-service/internal/handlers/events"
	"rainerio-service/internal/middleware"
	"rainerio-service/internal/pkg/session"
	"rainerio-service/internal/pkg/token"
	"rainerio-service/internal/repository/postgres"
	adminUsecase "rainerio-service/internal/service/admin"
	authUsecase "rainerio-service/internal/service/auth"
	catalogUsecase "rainerio-service/internal/service/catalog"
	"rainerio-service/internal/storage"
	"rainerio-service/internal/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] connected")

	// ----- Repositories -----
	vehicleRepo := postgres.NewVehicleRepository(pool)
	sellerRepo := postgres.NewSellerRepository(pool)

	// ----- Event hub -----
	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	// ----- Catalog store -----
	store := catalogUsecase.NewStore(vehicleRepo, sellerRepo, hub, logger)
	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// ----- Sessions & tokens -----
	tokens := token.NewService(s.cfg.JWTSecret, s.cfg.SessionTTL)
	sessions := session.NewManager(redisClient)

	// ----- Object storage -----
	bucket := storage.NewBucket(s.cfg.StorageURL, s.cfg.StorageBucket, s.cfg.StorageKey)

	// ----- Services -----
	types := vehicle.NewTypeRegistry()
	authService := authUsecase.NewAuthService(sellerRepo, tokens, sessions, s.cfg.SessionTTL, logger)
	adminService := adminUsecase.NewService(store, types, sellerRepo, bucket, logger)

	// ----- Handlers -----
	handlers := &Handlers{
		CatalogHandler: catalogHandler.NewCatalogHandler(store),
		AuthHandler:    authHandler.NewAuthHandler(authService, logger),
		AdminHandler:   adminHandler.NewAdminHandler(adminService),
		EventsHandler:  eventsHandler.NewEventsHandler(hub, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(authService),
	}

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)
	SetupRouter(s.engine, handlers)

	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
