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

	closeSessionHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/close_session"
	computeAvailabilityHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/compute_availability"
	createSessionHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/create_session"
	deleteScheduleHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/delete_schedule"
	dragSessionHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/drag_session"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/get_available_slots"
	getScheduleHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/get_schedule"
	getSessionHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/get_session"
	selectSlotHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/select_slot"
	snapPositionHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/snap_position"
	updateScheduleHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/config"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleTimeline/internal/infra/storage/schedule"
	pickerService "github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker"
	scheduleService "github.com/m04kA/SMC-ScheduleTimeline/internal/service/schedule"
	getAvailableSlotsUC "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/get_available_slots"
	snapPositionUC "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/snap_position"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/logger"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/metrics"
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

	log.Info("Starting SMC-ScheduleTimeline...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	// Инициализируем репозиторий (с метриками или без)
	var scheduleRepository *scheduleRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		scheduleRepository = scheduleRepo.NewRepository(dbmetrics.Plain(db))
	}

	// Параметры расчета слотов по умолчанию
	defaults := domain.PickerConfig{
		TotalDuration:   cfg.Timeline.DefaultDurationMinutes,
		GridMinutes:     cfg.Timeline.GridMinutes,
		PixelsPerMinute: cfg.Timeline.PixelsPerMinute,
	}

	// Интерфейсы метрик принимают nil, когда метрики выключены
	var (
		scheduleMetrics scheduleService.MetricsRecorder
		pickerMetrics   pickerService.MetricsRecorder
		slotsMetrics    getAvailableSlotsUC.MetricsRecorder
		snapMetrics     snapPositionUC.MetricsRecorder
	)
	if metricsCollector != nil {
		scheduleMetrics = metricsCollector
		pickerMetrics = metricsCollector
		slotsMetrics = metricsCollector
		snapMetrics = metricsCollector
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(scheduleRepository, scheduleMetrics, log)
	pickerSvc := pickerService.NewService(
		scheduleRepository,
		defaults,
		time.Duration(cfg.Sessions.TTL)*time.Second,
		pickerMetrics,
		log,
	)

	// Замена расписания пересчитывает открытые сессии
	scheduleSvc.Subscribe(pickerSvc)

	// Удаляем истекшие сессии в фоне
	go pickerSvc.RunJanitor(time.Duration(cfg.Sessions.CleanupInterval)*time.Second, stopCh)
	log.Info("Session janitor started (ttl=%ds, interval=%ds)", cfg.Sessions.TTL, cfg.Sessions.CleanupInterval)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(scheduleRepository, defaults, slotsMetrics, log)
	snapPositionUseCase := snapPositionUC.NewUseCase(scheduleRepository, defaults, snapMetrics, log)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(scheduleSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	computeAvailability := computeAvailabilityHandler.NewHandler(getAvailableSlotsUseCase, log)
	snapPosition := snapPositionHandler.NewHandler(snapPositionUseCase, log)
	createSession := createSessionHandler.NewHandler(pickerSvc, log)
	getSession := getSessionHandler.NewHandler(pickerSvc, log)
	closeSession := closeSessionHandler.NewHandler(pickerSvc, log)
	selectSlot := selectSlotHandler.NewHandler(pickerSvc, log)
	dragSession := dragSessionHandler.NewHandler(pickerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Расписания и доступность ---
	api.HandleFunc("/providers/{providerId}/schedules/{date}", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/schedules/{date}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", computeAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/snap", snapPosition.Handle).Methods(http.MethodPost)

	// --- Сессии выбора слота ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/select", selectSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/drag/start", dragSession.HandleStart).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/drag/move", dragSession.HandleMove).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/drag/end", dragSession.HandleEnd).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/drag/cancel", dragSession.HandleCancel).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Замена и удаление расписания (только сам исполнитель)
	protected.HandleFunc("/providers/{providerId}/schedules/{date}", updateSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/providers/{providerId}/schedules/{date}", deleteSchedule.Handle).Methods(http.MethodDelete)

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

	// Останавливаем фоновые задачи и закрываем сессии
	close(stopCh)
	openSessions := pickerSvc.Count()
	pickerSvc.CloseAll()
	log.Info("Background jobs stopped, %d sessions closed", openSessions)

	log.Info("Server stopped gracefully")
}
