package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	_ "github.com/rafabene/padelmatch-backend/docs"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	httphandlers "github.com/rafabene/padelmatch-backend/internal/handlers/http"
	"github.com/rafabene/padelmatch-backend/internal/handlers/middleware"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/cache"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/config"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/geocoding"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/i18n"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/logging"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/realtime"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/storage"
	"github.com/rafabene/padelmatch-backend/internal/services"
)

// @title PadelMatch API
// @version 1.0
// @description Padel matches, group chat, trail matches, quizzes and volunteers.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting padelmatch backend",
		"env", cfg.Env,
		"version", "dev",
	)

	ctx := context.Background()

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.Migrate(db, logger); err != nil {
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewDefaultService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Redis é opcional; sem ele a geocodificação não usa cache
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, geocoding cache disabled", "error", err)
			redisClient = nil
		}
	}

	geocoder := geocoding.NewCachedGeocoder(
		geocoding.NewGoogleGeocoder(cfg.Geocoding),
		redisClient,
		cfg.Geocoding.CacheTTL,
		logger,
	)

	fileStorage, uploadsRoot, err := newFileStorage(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		log.Fatal(err)
	}

	hub := realtime.NewHub(cfg.CORS.AllowedOrigins, logger)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	matchRepo := postgres.NewPadelMatchRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	trailRepo := postgres.NewTrailMatchRepository(db)
	questionRepo := postgres.NewQuestionRepository(db)
	volunteerRepo := postgres.NewVolunteerRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	notificationService := services.NewNotificationService(notificationRepo, hub, logger)
	memberService := services.NewMemberService(userRepo, logger)
	matchService := services.NewPadelMatchService(matchRepo, groupRepo, userRepo, uow, logger)
	chatService := services.NewGroupChatService(groupRepo, hub, logger)
	profileService := services.NewProfileService(userRepo, matchRepo, groupRepo, geocoder, 0, logger)
	trailService := services.NewTrailMatchService(trailRepo, userRepo, notificationService, logger)
	questionService := services.NewQuestionService(questionRepo, uow, logger)
	volunteerService := services.NewVolunteerService(volunteerRepo, fileStorage, logger)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:            cfg.Env,
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		UploadsRoot:    uploadsRoot,
		ProfileRoot:    cfg.Storage.LocalRoot + "/Profile",
		Logger:         logger,
		I18n:           i18nService,
		Auth:           middleware.NewAuthMiddleware(cfg.JWT.Secret, userRepo, logger),
		Members:        httphandlers.NewMemberHandler(memberService),
		PadelMatches:   httphandlers.NewPadelMatchHandler(matchService),
		Groups:         httphandlers.NewGroupHandler(chatService, hub),
		Profiles:       httphandlers.NewProfileHandler(profileService),
		TrailMatches:   httphandlers.NewTrailMatchHandler(trailService, fileStorage.URL),
		Questions:      httphandlers.NewQuestionHandler(questionService),
		Volunteers:     httphandlers.NewVolunteerHandler(volunteerService),
		Notifications:  httphandlers.NewNotificationHandler(notificationService, hub),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}

// newFileStorage escolhe o driver de arquivos; o segundo retorno é a raiz local a servir em /uploads
func newFileStorage(ctx context.Context, cfg *config.Config) (ports.FileStorage, string, error) {
	switch cfg.Storage.Driver {
	case config.StorageS3:
		s, err := storage.NewS3Storage(ctx, cfg.Storage.S3Bucket, cfg.Storage.AWSRegion, cfg.Storage.PublicURL)
		if err != nil {
			return nil, "", err
		}
		return s, "", nil
	default:
		s, err := storage.NewLocalStorage(cfg.Storage.LocalRoot, cfg.Storage.PublicURL)
		if err != nil {
			return nil, "", err
		}
		return s, s.Root(), nil
	}
}
