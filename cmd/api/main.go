package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Gajendran57/GoalGrid/docs" // swagger docs
	"github.com/Gajendran57/GoalGrid/internal/api/handlers"
	"github.com/Gajendran57/GoalGrid/internal/api/middleware"
	"github.com/Gajendran57/GoalGrid/internal/api/routes"
	"github.com/Gajendran57/GoalGrid/internal/domain/chatbot"
	"github.com/Gajendran57/GoalGrid/internal/domain/habits"
	"github.com/Gajendran57/GoalGrid/internal/domain/realtime"
	"github.com/Gajendran57/GoalGrid/internal/domain/transfer"
	"github.com/Gajendran57/GoalGrid/internal/domain/user"
	"github.com/Gajendran57/GoalGrid/internal/infrastructure/cache"
	"github.com/Gajendran57/GoalGrid/internal/infrastructure/persistence/postgres/connection"
	"github.com/Gajendran57/GoalGrid/internal/infrastructure/persistence/postgres/migrations"
	"github.com/Gajendran57/GoalGrid/internal/infrastructure/scheduler"
	"github.com/Gajendran57/GoalGrid/pkg/broker"
	"github.com/Gajendran57/GoalGrid/pkg/config"
	"github.com/Gajendran57/GoalGrid/pkg/logger"
	"github.com/Gajendran57/GoalGrid/pkg/security/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           GoalGrid API
// @version         1.0
// @description     A habit tracking API with streaks, analytics and a Telegram companion bot.

// @host      localhost:8000
// @BasePath

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.NewLoggerWithLevel(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	tracing := middleware.NewTracingMiddleware()
	metrics := middleware.NewMetricsMiddleware()

	router.Use(gin.Recovery())
	router.Use(tracing.TraceRequest())
	router.Use(metrics.CollectMetrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Type",
			"Authorization",
			"X-Request-ID",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Encoding",
			"Content-Disposition",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
			"X-Request-ID",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Connect to database and migrate
	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := migrations.AutoMigrate(db, log.Logger); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Redis backs the response cache, rate limiting, link codes, the
	// chat outbox and the activity bus
	redisClient, err := cache.NewRedisClient(cache.NewConfigFromEnv(cfg))
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	rateLimiter := auth.NewRedisRateLimiter(redisClient.GetClient(), 1*time.Minute, 100)
	cacheMiddleware := middleware.NewCacheMiddleware(redisClient, "http", 5*time.Minute)
	middleware.StartCacheMetricsExporter(redisClient, 15*time.Second)

	busLogger := logrus.New()
	busLogger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Mode == "production" {
		busLogger.SetLevel(logrus.InfoLevel)
	} else {
		busLogger.SetLevel(logrus.DebugLevel)
	}

	// Activity events travel Redis pub/sub so every instance's open
	// websockets see them
	messageBus := broker.NewRedisBroker(redisClient.GetClient(), busLogger)
	defer messageBus.Close()

	// Repositories
	userRepo := user.NewRepository(db)
	habitsRepo := habits.NewRepository(db)

	// Services
	userService := user.NewService(userRepo)
	habitsService := habits.NewService(habitsRepo, redisClient, messageBus, log.Logger)
	transferService := transfer.NewService(habitsRepo, redisClient, log.Logger)

	// Realtime push: bus -> consumer -> hub -> websockets
	hub := realtime.NewHub(16)
	consumer := realtime.NewBrokerConsumer(messageBus, hub, busLogger)
	if err := consumer.Start(context.Background()); err != nil {
		log.Fatal("Failed to start activity consumer", zap.Error(err))
	}
	defer consumer.Stop()

	// Telegram companion bot
	var bot chatbot.Sender
	if cfg.Telegram.Enabled {
		botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
		if err != nil {
			log.Fatal("Failed to connect to Telegram", zap.Error(err))
		}
		log.Info("Telegram bot connected", zap.String("username", botAPI.Self.UserName))
		bot = botAPI
	} else {
		log.Info("Telegram bot disabled")
	}

	linkCodes := chatbot.NewLinkCodeStore(redisClient, cfg.Telegram.LinkTTL())
	outbox := broker.NewOutboxQueue(redisClient.GetClient(), log)
	chatbotService := chatbot.NewService(bot, userService, habitsService, linkCodes, outbox, log)
	habitsService.SetNotifier(chatbotService)

	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	defer stopDispatcher()
	go chatbotService.StartDispatcher(dispatcherCtx)

	if cfg.Scheduler.Enabled {
		habitScheduler := scheduler.NewScheduler(habitsService, chatbotService, redisClient, log)
		habitScheduler.Start()
		log.Info("Reminder scheduler started")
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry())
	habitsHandler := handlers.NewHabitsHandler(habitsService)
	recordsHandler := handlers.NewRecordsHandler(habitsService)
	analyticsHandler := handlers.NewAnalyticsHandler(habitsService)
	dashboardHandler := handlers.NewDashboardHandler(habitsService)
	transferHandler := handlers.NewTransferHandler(transferService)
	chatbotHandler := handlers.NewChatbotHandler(chatbotService, cfg.Telegram.WebhookSecret)
	realtimeHandler := handlers.NewRealtimeHandler(hub, cfg.Auth.JWTSecret, log.Logger)

	// Routes
	routes.NewAuthRoutes(authHandler, cfg.Auth.JWTSecret, rateLimiter.WithLimit(20, time.Minute)).RegisterRoutes(router)
	routes.NewHabitsRoutes(habitsHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)
	routes.NewRecordsRoutes(recordsHandler, cfg.Auth.JWTSecret).RegisterRoutes(router)
	routes.NewAnalyticsRoutes(analyticsHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)
	routes.NewDashboardRoutes(dashboardHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)
	routes.NewTransferRoutes(transferHandler, cfg.Auth.JWTSecret).RegisterRoutes(router)
	routes.NewChatbotRoutes(chatbotHandler, cfg.Auth.JWTSecret, rateLimiter).RegisterRoutes(router)
	routes.NewRealtimeRoutes(realtimeHandler).RegisterRoutes(router)
	routes.SetupHealthRoutes(router, db, redisClient)

	if cfg.Swagger.Enabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		log.Info("Swagger UI registered at /swagger/index.html")
	}

	for _, route := range router.Routes() {
		log.Debug("Route registered",
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	stopDispatcher()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
