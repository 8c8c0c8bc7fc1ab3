package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"log/slog"

	"github.com/YazzTTV/productif-notifier/internal/api/handlers"
	"github.com/YazzTTV/productif-notifier/internal/common/httputil"
	"github.com/YazzTTV/productif-notifier/internal/common/metrics"
	"github.com/YazzTTV/productif-notifier/internal/common/middleware"
	"github.com/YazzTTV/productif-notifier/internal/config"
	"github.com/YazzTTV/productif-notifier/internal/database"
	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/internal/notifier/audit"
	"github.com/YazzTTV/productif-notifier/internal/notifier/bridge"
	"github.com/YazzTTV/productif-notifier/internal/notifier/dedup"
	"github.com/YazzTTV/productif-notifier/internal/notifier/eventbus"
	"github.com/YazzTTV/productif-notifier/internal/notifier/repository/sql"
	"github.com/YazzTTV/productif-notifier/internal/notifier/scheduler"
	"github.com/YazzTTV/productif-notifier/internal/notifier/sender"
	"github.com/YazzTTV/productif-notifier/internal/notifier/service"
	"github.com/YazzTTV/productif-notifier/internal/notifier/watchdog"
	"github.com/YazzTTV/productif-notifier/internal/notifier/watcher"
	"github.com/YazzTTV/productif-notifier/pkg"
	"github.com/YazzTTV/productif-notifier/pkg/txs"
)

func gracefulShutdown(
	ctx context.Context,
	server *http.Server,
	metricsServer *metrics.MetricsServer,
	notifierService *service.NotifierService,
	stopCh <-chan struct{},
	appLogger *slog.Logger,
) {
	<-stopCh
	appLogger.Info("Получен сигнал завершения")

	notifierService.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Ошибка при остановке HTTP сервера",
			"error", err,
		)
	}

	if err := metricsServer.Stop(shutdownCtx); err != nil {
		appLogger.Error("Ошибка при остановке сервера метрик",
			"error", err,
		)
	}

	appLogger.Info("Сервер успешно остановлен")
}

func startHTTPServer(_ context.Context, server *http.Server, port int, stopCh chan<- struct{}, appLogger *slog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLogger.Info("Получен системный сигнал",
			"signal", sig.String(),
		)
		close(stopCh)
	}()

	go func() {
		appLogger.Info("Запуск операторского HTTP сервера",
			"port", port,
		)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Ошибка при запуске HTTP сервера",
				"error", err,
			)
			close(stopCh)
		}
	}()
}

func buildSenders(cfg *config.Config, appLogger *slog.Logger) (*sender.MultiChannelSender, error) {
	multiSender := sender.NewMultiChannelSender(appLogger)

	if cfg.TelegramBotToken != "" {
		telegramSender, err := sender.NewTelegramSender(cfg.TelegramBotToken, appLogger)
		if err != nil {
			return nil, fmt.Errorf("ошибка создания Telegram-отправителя: %w", err)
		}

		multiSender.Register(models.ChannelChat, telegramSender)
	} else {
		appLogger.Warn("Токен Telegram не задан, канал чата отключён")
	}

	if cfg.PushProviderURL != "" {
		pushClient := httputil.CreateResilientHTTPClient(cfg, appLogger, "push")

		var pushSender sender.Sender = sender.NewPushSender(pushClient, cfg.PushProviderURL, cfg.PushProviderToken, appLogger)

		if cfg.FallbackEnabled && cfg.PushFallbackURL != "" {
			fallbackClient := httputil.CreateResilientHTTPClient(cfg, appLogger, "push-fallback")
			pushSender = sender.NewFallbackSender(
				pushSender,
				sender.NewPushSender(fallbackClient, cfg.PushFallbackURL, cfg.PushFallbackToken, appLogger),
				appLogger,
			)
		}

		multiSender.Register(models.ChannelPush, pushSender)
	}

	if cfg.EmailProviderURL != "" {
		emailClient := httputil.CreateResilientHTTPClient(cfg, appLogger, "email")

		var emailSender sender.Sender = sender.NewEmailSender(
			emailClient, cfg.EmailProviderURL, cfg.EmailProviderToken, cfg.EmailFrom, appLogger,
		)

		if cfg.FallbackEnabled && cfg.EmailFallbackURL != "" {
			fallbackClient := httputil.CreateResilientHTTPClient(cfg, appLogger, "email-fallback")
			emailSender = sender.NewFallbackSender(
				emailSender,
				sender.NewEmailSender(fallbackClient, cfg.EmailFallbackURL, cfg.EmailFallbackToken, cfg.EmailFrom, appLogger),
				appLogger,
			)
		}

		multiSender.Register(models.ChannelEmail, emailSender)
	}

	return multiSender, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	appLogger := pkg.NewLogger(os.Stdout)

	cfg := config.LoadConfig()

	ctx := context.Background()

	db, err := database.NewPostgresDB(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к базе данных",
			"error", err,
		)

		return fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		appLogger.Error("Ошибка при выполнении миграций",
			"error", err,
		)

		return err
	}

	prefRepo := sql.NewPreferenceRepository(db)
	sessionRepo := sql.NewSessionRepository(db)
	deliveryRepo := sql.NewDeliveryRepository(db)

	multiSender, err := buildSenders(cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при создании отправителей",
			"error", err,
		)

		return err
	}

	var reserver dedup.Reserver

	redisReserver, err := dedup.NewRedisReserver(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к Redis",
			"error", err,
		)

		appLogger.Warn("Продолжаем без быстрых резерваций, защита от дублей работает по журналу")
	} else {
		reserver = redisReserver
	}

	guard := dedup.NewGuard(deliveryRepo, reserver, cfg.DedupWindow, appLogger)

	var auditor bridge.Auditor

	if cfg.AuditEnabled {
		kafkaAuditor := audit.NewKafkaAuditor(
			strings.Split(cfg.KafkaBrokers, ","),
			cfg.TopicDeliveryEvents,
			cfg.TopicDeliveryEventsDLQ,
			appLogger,
		)

		defer func() {
			if err := kafkaAuditor.Close(); err != nil {
				appLogger.Error("Ошибка при закрытии продюсера аудита",
					"error", err,
				)
			}
		}()

		auditor = kafkaAuditor

		appLogger.Info("Аудит доставок включён",
			"topic", cfg.TopicDeliveryEvents,
		)
	}

	actionBridge := bridge.NewBridge(
		guard,
		multiSender,
		deliveryRepo,
		auditor,
		cfg.ActionQueueSize,
		cfg.SendTimeout,
		cfg.DedupWindow,
		appLogger,
	)

	userScheduler := scheduler.NewUserScheduler(prefRepo, actionBridge, cfg.SchedulerJitterMinutes, appLogger)

	bus := eventbus.NewBus(appLogger)

	changeWatcher := watcher.NewWatcher(
		prefRepo,
		bus,
		userScheduler,
		cfg.WatcherPollInterval,
		cfg.WatcherFullScanCycles,
		appLogger,
	)

	txManager := txs.NewTxManager(db.Pool, appLogger)

	sessionWatchdog := watchdog.NewWatchdog(
		sessionRepo,
		prefRepo,
		actionBridge,
		txManager,
		cfg.WatchdogInterval,
		cfg.SessionReminderMinutes,
		appLogger,
	)

	notifierService := service.NewNotifierService(
		bus,
		userScheduler,
		changeWatcher,
		sessionWatchdog,
		actionBridge,
		cfg.DailyRefreshAt,
		appLogger,
	)

	notifierService.Start(ctx)

	mux := http.NewServeMux()
	handlers.NewOpsHandler(notifierService, appLogger).Register(mux)

	rateLimiter := middleware.NewRateLimiterMiddleware(ctx, cfg.RateLimitRequests, cfg.RateLimitWindow, appLogger)
	metricsMiddleware := middleware.NewMetricsMiddleware()

	httpServer := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.OpsServerPort),
		Handler:           rateLimiter.Middleware(metricsMiddleware.Middleware(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsServer := metrics.NewMetricsServer(cfg.MetricsPort, appLogger)

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			appLogger.Error("Ошибка при запуске сервера метрик",
				"error", err,
			)
		}
	}()

	stopCh := make(chan struct{})

	startHTTPServer(ctx, httpServer, cfg.OpsServerPort, stopCh, appLogger)

	gracefulShutdown(ctx, httpServer, metricsServer, notifierService, stopCh, appLogger)

	return nil
}
