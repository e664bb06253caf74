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

	addAvailabilityHandler "github.com/m04kA/MDT-ScheduleService/internal/api/handlers/add_availability"
	cancelAppointmentHandler "github.com/m04kA/MDT-ScheduleService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/MDT-ScheduleService/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/m04kA/MDT-ScheduleService/internal/api/handlers/create_appointment"
	deleteAvailabilityHandler "github.com/m04kA/MDT-ScheduleService/internal/api/handlers/delete_availability"
	getAppointmentHandler "github.com/m04kA/MDT-ScheduleService/internal/api/handlers/get_appointment"
	listMediatorAvailabilityHandler "github.com/m04kA/MDT-ScheduleService/internal/api/handlers/list_mediator_availability"
	listMyAppointmentsHandler "github.com/m04kA/MDT-ScheduleService/internal/api/handlers/list_my_appointments"
	listMyAvailabilityHandler "github.com/m04kA/MDT-ScheduleService/internal/api/handlers/list_my_availability"
	"github.com/m04kA/MDT-ScheduleService/internal/api/middleware"
	"github.com/m04kA/MDT-ScheduleService/internal/config"
	appointmentRepo "github.com/m04kA/MDT-ScheduleService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/MDT-ScheduleService/internal/infra/storage/availability"
	caseServiceClient "github.com/m04kA/MDT-ScheduleService/internal/integrations/caseservice"
	appointmentsService "github.com/m04kA/MDT-ScheduleService/internal/service/appointments"
	availabilityService "github.com/m04kA/MDT-ScheduleService/internal/service/availability"
	addAvailabilityUC "github.com/m04kA/MDT-ScheduleService/internal/usecase/add_availability"
	createAppointmentUC "github.com/m04kA/MDT-ScheduleService/internal/usecase/create_appointment"
	"github.com/m04kA/MDT-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/MDT-ScheduleService/pkg/logger"
	"github.com/m04kA/MDT-ScheduleService/pkg/metrics"
	"github.com/m04kA/MDT-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/MDT-ScheduleService/pkg/txmanager"
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

	log.Info("Starting MDT-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент CaseService
	caseClient := caseServiceClient.NewClient(
		cfg.CaseService.URL,
		time.Duration(cfg.CaseService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CaseService=%s timeout=%ds)",
		cfg.CaseService.URL, cfg.CaseService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		caseClient,
		txMgr,
		log,
	)
	addAvailabilityUseCase := addAvailabilityUC.NewUseCase(
		availabilityRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	addAvailability := addAvailabilityHandler.NewHandler(addAvailabilityUseCase, log)
	listMyAvailability := listMyAvailabilityHandler.NewHandler(availabilitySvc, log)
	listMediatorAvailability := listMediatorAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listMyAppointments := listMyAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-User-Role headers)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Окна доступности ---
	// Публикация окна доступности (только медиатор)
	protected.HandleFunc("/availability", addAvailability.Handle).Methods(http.MethodPost)

	// Окна вызывающего медиатора
	protected.HandleFunc("/availability/my", listMyAvailability.Handle).Methods(http.MethodGet)

	// Окна произвольного медиатора (?mediatorId=)
	protected.HandleFunc("/availability", listMediatorAvailability.Handle).Methods(http.MethodGet)

	// Удаление окна доступности
	protected.HandleFunc("/availability/{windowId}", deleteAvailability.Handle).Methods(http.MethodDelete)

	// --- Встречи ---
	// Бронирование встречи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Встречи вызывающего (/my раньше /{appointmentId} - порядок важен для mux)
	protected.HandleFunc("/appointments/my", listMyAppointments.Handle).Methods(http.MethodGet)

	// Получение встречи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена встречи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Завершение встречи (только медиатор, после окончания)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
