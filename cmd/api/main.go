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
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/academia-backend/docs"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	httphandlers "github.com/rafabene/academia-backend/internal/handlers/http"
	"github.com/rafabene/academia-backend/internal/handlers/middleware"
	"github.com/rafabene/academia-backend/internal/infrastructure/config"
	"github.com/rafabene/academia-backend/internal/infrastructure/i18n"
	"github.com/rafabene/academia-backend/internal/infrastructure/logging"
	"github.com/rafabene/academia-backend/internal/infrastructure/messaging/rabbitmq"
	"github.com/rafabene/academia-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/academia-backend/internal/infrastructure/realtime"
	"github.com/rafabene/academia-backend/internal/infrastructure/security"
	"github.com/rafabene/academia-backend/internal/services"
)

// devJWTSecret só é aceito fora de produção
const devJWTSecret = "academia-dev-secret"

// @title Academia API
// @version 1.0
// @description API de gestão de academia: usuários, alunos, instrutores, treinos, pagamentos e notificações.
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
	logger.Info("starting academia backend",
		"env", cfg.Env,
		"version", docs.SwaggerInfo.Version,
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService(cfg.Server.LocalesDir, "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Segurança
	secret := cfg.JWT.Secret
	if secret == "" {
		if cfg.IsProduction() {
			log.Fatal("JWT_SECRET is required in production")
		}
		logger.Warn("JWT_SECRET not set, using development secret")
		secret = devJWTSecret
	}
	tokens, err := security.NewJWTManager(secret, cfg.JWT.AccessExpiry)
	if err != nil {
		logger.Error("failed to initialize jwt", "error", err)
		log.Fatal(err)
	}
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	// Publicação de notificações: websocket sempre, RabbitMQ quando configurado
	allowedOrigins := middleware.ParseOrigins(cfg.CORS.AllowedOrigins)
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		allowedOrigins = nil
	}
	hub := realtime.NewHub(logger, allowedOrigins)
	publishers := realtime.Fanout{hub}
	if cfg.RabbitMQ.URL != "" {
		queue, err := rabbitmq.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, logger)
		if err != nil {
			logger.Warn("rabbitmq unavailable, notifications will not be queued", "error", err)
		} else {
			defer queue.Close()
			publishers = append(publishers, queue)
		}
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	instructorRepo := postgres.NewInstructorRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	treinoRepo := postgres.NewTreinoRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	dashboardRepo := postgres.NewDashboardRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	var publisher ports.NotificationPublisher = publishers
	userService := services.NewUserService(userRepo, hasher, logger)
	authService := services.NewAuthService(userService, userRepo, studentRepo, hasher, tokens, uow, logger)
	studentService := services.NewStudentService(studentRepo, userRepo, instructorRepo, attendanceRepo, logger)
	instructorService := services.NewInstructorService(instructorRepo, userRepo, logger)
	treinoService := services.NewTreinoService(treinoRepo, userRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, userRepo, publisher, logger)
	paymentService := services.NewPaymentService(paymentRepo, studentRepo, notificationRepo, notificationService, uow, logger)
	dashboardService := services.NewDashboardService(dashboardRepo)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
		I18n:           i18nService,
		Auth:           middleware.NewAuthMiddleware(tokens, userRepo),
		EnableSwagger:  !cfg.IsProduction(),
	}, httphandlers.Handlers{
		Auth:          httphandlers.NewAuthHandler(authService),
		Users:         httphandlers.NewUserHandler(userService),
		Students:      httphandlers.NewStudentHandler(studentService),
		Instructors:   httphandlers.NewInstructorHandler(instructorService),
		Treinos:       httphandlers.NewTreinoHandler(treinoService),
		Payments:      httphandlers.NewPaymentHandler(paymentService),
		Notifications: httphandlers.NewNotificationHandler(notificationService, hub, logger),
		Dashboard:     httphandlers.NewDashboardHandler(dashboardService),
		Health:        httphandlers.NewHealthHandler(sqlDB, cfg.Env),
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
