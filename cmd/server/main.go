package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/ignatzorin/creative-network/internal/config"
	"github.com/ignatzorin/creative-network/internal/db"
	"github.com/ignatzorin/creative-network/internal/http/middleware"
	httpRouter "github.com/ignatzorin/creative-network/internal/http/router"
	"github.com/ignatzorin/creative-network/internal/infrastructure/persistence"
	"github.com/ignatzorin/creative-network/internal/interface/http/handler"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/service"
	"github.com/ignatzorin/creative-network/internal/storage"
	"github.com/ignatzorin/creative-network/internal/usecase/conversation"
	"github.com/ignatzorin/creative-network/internal/usecase/event"
	"github.com/ignatzorin/creative-network/internal/usecase/follow"
	"github.com/ignatzorin/creative-network/internal/usecase/interaction"
	"github.com/ignatzorin/creative-network/internal/usecase/job"
	"github.com/ignatzorin/creative-network/internal/usecase/moodboard"
	"github.com/ignatzorin/creative-network/internal/usecase/notification"
	"github.com/ignatzorin/creative-network/internal/usecase/offering"
	"github.com/ignatzorin/creative-network/internal/usecase/post"
	"github.com/ignatzorin/creative-network/internal/usecase/profile"
	"github.com/ignatzorin/creative-network/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	if cfg.IsProduction() {
		logger.Init("info")
	} else {
		logger.Init("debug")
		logger.SetTextFormatter()
	}
	mainLog := logger.WithComponent("main")

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		mainLog.WithError(err).Fatal("ошибка подключения к базе")
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		mainLog.WithError(err).Fatal("ошибка миграций")
	}

	features, err := db.ProbeFeatures(ctx, dbConn)
	if err != nil {
		mainLog.WithError(err).Fatal("не удалось определить доступные функции")
	}
	if disabled := features.Disabled(); len(disabled) > 0 {
		mainLog.WithField("disabled", disabled).Warn("часть функций недоступна: таблицы не развёрнуты")
	}

	rdb, err := db.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		mainLog.WithError(err).Fatal("ошибка подключения к redis")
	}
	if rdb != nil {
		defer closeRedis(rdb)
	}

	uploader, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		mainLog.WithError(err).Fatal("не удалось подготовить хранилище загрузок")
	}

	// Вебсокеты.
	hub := ws.NewHub()
	go hub.Run(ctx)

	// Репозитории.
	userRepo := persistence.NewUserRepositoryAdapter(dbConn)
	postRepo := persistence.NewPostRepositoryAdapter(dbConn, features)
	followRepo := persistence.NewFollowRepositoryAdapter(dbConn)
	notificationRepo := persistence.NewNotificationRepositoryAdapter(dbConn)
	portfolioRepo := persistence.NewPortfolioRepositoryAdapter(dbConn)
	serviceRepo := persistence.NewServiceRepositoryAdapter(dbConn)
	jobRepo := persistence.NewJobRepositoryAdapter(dbConn)

	// Use cases.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	authService := service.NewAuthService(userRepo, tokenManager)

	notifications := notification.New(notificationRepo, hub, features)
	follows := follow.New(followRepo, userRepo, notifications.Notifier, features)
	posts := post.New(postRepo)
	interactions := interaction.New(interaction.Deps{
		Posts:     postRepo,
		Likes:     persistence.NewLikeRepositoryAdapter(dbConn),
		Bookmarks: persistence.NewBookmarkRepositoryAdapter(dbConn),
		Comments:  persistence.NewCommentRepositoryAdapter(dbConn),
		Users:     userRepo,
		Notifier:  notifications.Notifier,
		Features:  features,
	})
	conversations := conversation.New(
		persistence.NewConversationRepositoryAdapter(dbConn),
		persistence.NewMessageRepositoryAdapter(dbConn),
		userRepo, hub, features,
	)
	jobs := job.New(jobRepo)
	events := event.New(persistence.NewEventRepositoryAdapter(dbConn), features)
	services := offering.New(serviceRepo, features)
	profiles := profile.New(profile.Deps{
		Users:     userRepo,
		Posts:     postRepo,
		Portfolio: portfolioRepo,
		Services:  services.ByProvider,
		Follows:   follows.Reader(),
	})
	boards := moodboard.New(persistence.NewMoodBoardRepositoryAdapter(dbConn), postRepo, portfolioRepo, features)

	// Лимитеры: общий redis при наличии, иначе память процесса.
	apiStore, err := middleware.NewLimiterStore(rdb, "api")
	if err != nil {
		mainLog.WithError(err).Fatal("не удалось создать хранилище лимитов")
	}
	authStore, err := middleware.NewLimiterStore(rdb, "auth")
	if err != nil {
		mainLog.WithError(err).Fatal("не удалось создать хранилище лимитов")
	}

	// HTTP хэндлеры.
	handlers := httpRouter.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Post:         handler.NewPostHandler(posts, interactions),
		Follow:       handler.NewFollowHandler(follows),
		Profile:      handler.NewProfileHandler(profiles, posts, services),
		Job:          handler.NewJobHandler(jobs),
		Event:        handler.NewEventHandler(events),
		Service:      handler.NewServiceHandler(services),
		MoodBoard:    handler.NewMoodBoardHandler(boards),
		Notification: handler.NewNotificationHandler(notifications),
		Conversation: handler.NewConversationHandler(conversations),
		Upload:       handler.NewUploadHandler(uploader, cfg.Storage.MaxUploadSizeMB<<20),
		Health:       handler.NewHealthHandler(dbConn, rdb, features),
		WS:           handler.NewWSHandler(hub, tokenManager, cfg.AllowedOrigins),
	}
	if cfg.Env == "development" {
		seeder := service.NewSeedService(userRepo, postRepo, jobRepo, followRepo, time.Now().UnixNano())
		handlers.Seed = handler.NewSeedHandler(seeder)
	}

	engine := httpRouter.SetupRouter(cfg, handlers, tokenManager, httpRouter.Limiters{API: apiStore, Auth: authStore})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			mainLog.WithError(err).Error("ошибка остановки http сервера")
		}
	}()

	mainLog.WithField("port", cfg.HTTPPort).Info("HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		mainLog.WithError(err).Fatal("сервер завершился с ошибкой")
	}
}

// safeClose закрывает соединение с базой.
func safeClose(conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		logger.Log.WithError(err).Error("main: ошибка закрытия базы")
	}
}

func closeRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		logger.Log.WithError(err).Error("main: ошибка закрытия redis")
	}
}
