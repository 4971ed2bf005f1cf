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

	"github.com/m04kA/salon-booking/internal/api/handlers"
	blockDateHandler "github.com/m04kA/salon-booking/internal/api/handlers/block_date"
	blockSlotHandler "github.com/m04kA/salon-booking/internal/api/handlers/block_slot"
	cancelAppointmentHandler "github.com/m04kA/salon-booking/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/salon-booking/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/m04kA/salon-booking/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_appointment"
	getBlockedSlotsHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_blocked_slots"
	getServicesHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_services"
	getUpcomingAppointmentsHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_upcoming_appointments"
	listAllSlotsHandler "github.com/m04kA/salon-booking/internal/api/handlers/list_all_slots"
	listOfferableSlotsHandler "github.com/m04kA/salon-booking/internal/api/handlers/list_offerable_slots"
	unblockSlotHandler "github.com/m04kA/salon-booking/internal/api/handlers/unblock_slot"
	"github.com/m04kA/salon-booking/internal/api/middleware"
	"github.com/m04kA/salon-booking/internal/config"
	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/internal/infra/idempotency"
	appointmentRepo "github.com/m04kA/salon-booking/internal/infra/storage/appointment"
	blocklistRepo "github.com/m04kA/salon-booking/internal/infra/storage/blocklist"
	timeslotRepo "github.com/m04kA/salon-booking/internal/infra/storage/timeslot"
	appointmentsService "github.com/m04kA/salon-booking/internal/service/appointments"
	blocklistService "github.com/m04kA/salon-booking/internal/service/blocklist"
	createAppointmentUC "github.com/m04kA/salon-booking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/salon-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/metrics"
	"github.com/m04kA/salon-booking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
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

	log.Info("Starting salon-booking...")
	log.Info("Configuration loaded from config.toml")

	weekdayRule, err := domain.NewWeekdayRule(cfg.Schedule.WeekdayOpensAt)
	if err != nil {
		log.Fatal("Invalid weekday threshold: %v", err)
	}
	loc := cfg.Schedule.Loc()
	queryTimeout := cfg.Database.QueryTimeout()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

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
	log.Info("Successfully connected to database")

	// Оборачиваем БД метриками; с nil коллектором обертка только прокидывает вызовы
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Хранилище ключей идемпотентности (опционально)
	var idempotencyStore createAppointmentUC.IdempotencyStore
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			// бронирование работает и без redis, ключи просто не проверяются
			log.Warn("Redis unavailable at %s, idempotency keys will be ignored: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Connected to redis at %s", cfg.Redis.Addr)
		}
		// незавершенный ключ живет не дольше создания записи, готовый ответ хранится весь TTL
		idempotencyStore = idempotency.NewStore(redisClient, cfg.Booking.IdempotencyTTL()).
			WithPendingTTL(2 * queryTimeout)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	timeslotRepository := timeslotRepo.NewRepository(wrappedDB)
	blocklistRepository := blocklistRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, queryTimeout, log).
		WithClock(func() time.Time { return time.Now().In(loc) })
	blocklistSvc := blocklistService.NewService(
		blocklistRepository,
		timeslotRepository,
		txMgr,
		queryTimeout,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		timeslotRepository,
		blocklistRepository,
		weekdayRule,
		queryTimeout,
		metricsCollector,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		getAvailableSlotsUseCase,
		txMgr,
		idempotencyStore,
		metricsCollector,
		createAppointmentUC.Options{
			StrictServices: cfg.Booking.StrictServices,
			QueryTimeout:   queryTimeout,
		},
		log,
	).WithClock(func() time.Time { return time.Now().In(loc) })

	// Инициализируем handlers
	listOfferableSlots := listOfferableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listAllSlots := listAllSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUpcomingAppointments := getUpcomingAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	getBlockedSlots := getBlockedSlotsHandler.NewHandler(blocklistSvc, log)
	blockSlot := blockSlotHandler.NewHandler(blocklistSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(blocklistSvc, log)
	blockDate := blockDateHandler.NewHandler(blocklistSvc, log)
	getServices := getServicesHandler.NewHandler()

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), queryTimeout)
		defer cancel()

		if err := wrappedDB.PingContext(ctx); err != nil {
			log.Error("GET /healthz - Database ping failed: %v", err)
			handlers.RespondServiceUnavailable(w, 5)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/slots", listOfferableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Страница подтверждения записи
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют пароль администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Password))

	if cfg.Admin.Password == "" {
		log.Warn("Admin password is empty, admin routes will reject every request")
	}

	// --- Записи ---
	admin.HandleFunc("/slots", listAllSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", getUpcomingAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// --- Блокировки ---
	admin.HandleFunc("/blocked-slots", getBlockedSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-slots", blockSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-slots/{id}", unblockSlot.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/blocked-dates", blockDate.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
