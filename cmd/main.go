package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/cancel_booking"
	checkConflictHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/check_conflict"
	convertDraftHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/convert_draft"
	createBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/create_booking"
	discardDraftHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/discard_draft"
	getAvailabilityHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_user_bookings"
	getVenueHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_venue"
	getVenueDayHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_venue_day"
	quotePriceHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/quote_price"
	saveDraftHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/save_draft"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/config"
	"github.com/m04kA/SMC-VenueBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/depositservice"
	bookingsService "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	draftsService "github.com/m04kA/SMC-VenueBookingService/internal/service/drafts"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/snapshots"
	venuesService "github.com/m04kA/SMC-VenueBookingService/internal/service/venues"
	checkConflictUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/check_conflict"
	createBookingUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_availability"
	quotePriceUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/quote_price"
	"github.com/m04kA/SMC-VenueBookingService/pkg/logger"
	"github.com/m04kA/SMC-VenueBookingService/pkg/metrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/txmanager"
)

// eventPublisher общий интерфейс Kafka и no-op публикации
type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
	Close() error
}

func main() {
	// Загружаем конфигурацию (CONFIG_PATH переопределяет путь)
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VenueBookingService...")

	// Инициализируем метрики (если выключены - no-op реестр)
	metricsCollector := metrics.NewNop()
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	venueRepository := venueRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Источник правил депозита: HTTP клиент, поверх него кэш в Redis (если задан адрес)
	depositClient := depositservice.NewClient(
		cfg.DepositService.URL,
		time.Duration(cfg.DepositService.Timeout)*time.Second,
		log,
	)
	var deposits quotePriceUC.DepositRulesProvider = depositClient

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// Кэш необязателен: при ошибках Redis запросы идут напрямую в DepositService
			log.Warn("Redis is unavailable at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		deposits = depositservice.NewCachedClient(depositClient, rdb, time.Duration(cfg.Redis.TTL)*time.Second, log)
		log.Info("Deposit rules cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Публикация событий жизненного цикла бронирований
	var publisher eventPublisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Загрузка снимков бронирований с вытеснением устаревших запросов
	snapshotLoader := snapshots.NewLoader(
		bookingRepository,
		time.Duration(cfg.Engine.FetchTimeout)*time.Second,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, venueRepository, log)
	venueSvc := venuesService.NewService(venueRepository, log)
	draftSvc := draftsService.NewService(
		bookingRepository,
		venueRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		venueRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		venueRepository,
		snapshotLoader,
		cfg.Engine.DefaultSlotStepMinutes,
		log,
	)
	checkConflictUseCase := checkConflictUC.NewUseCase(bookingRepository, venueRepository, metricsCollector, log)
	quotePriceUseCase := quotePriceUC.NewUseCase(venueRepository, deposits, metricsCollector, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVenueDay := getVenueDayHandler.NewHandler(bookingSvc, log)
	getVenue := getVenueHandler.NewHandler(venueSvc, log)
	saveDraft := saveDraftHandler.NewHandler(draftSvc, log)
	convertDraft := convertDraftHandler.NewHandler(draftSvc, log)
	discardDraft := discardDraftHandler.NewHandler(draftSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.ClientID)

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			time.Duration(cfg.RateLimit.IdleTTL)*time.Second,
		)
		api.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d, idle_ttl=%ds)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Карточка площадки с тарифами
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// Сетка доступности на дату
	api.HandleFunc("/venues/{venueId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Предварительная проверка конфликта
	api.HandleFunc("/venues/{venueId}/conflicts/check", checkConflict.Handle).Methods(http.MethodPost)

	// Расчет стоимости и депозита
	api.HandleFunc("/venues/{venueId}/quote", quotePrice.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Бронирования площадки в порядке наложения (сетка календаря)
	protected.HandleFunc("/venues/{venueId}/bookings", getVenueDay.Handle).Methods(http.MethodGet)

	// --- Черновики ---
	protected.HandleFunc("/drafts", saveDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}/convert", convertDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}", discardDraft.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (in-flight snapshot fetches: %d)", snapshotLoader.InFlight())
}
