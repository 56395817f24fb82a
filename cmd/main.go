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

	changeStatusHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/change_status"
	createAppointmentHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/get_available_slots"
	getPatientAppointmentsHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/get_patient_appointments"
	getProfessionalAppointmentsHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/get_professional_appointments"
	"github.com/m04kA/Clinic-SchedulingService/internal/api/middleware"
	"github.com/m04kA/Clinic-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/Clinic-SchedulingService/internal/infra/storage/appointment"
	cancellationRepo "github.com/m04kA/Clinic-SchedulingService/internal/infra/storage/cancellationlog"
	clinicalRecordsClient "github.com/m04kA/Clinic-SchedulingService/internal/integrations/clinicalrecords"
	patientServiceClient "github.com/m04kA/Clinic-SchedulingService/internal/integrations/patientservice"
	professionalServiceClient "github.com/m04kA/Clinic-SchedulingService/internal/integrations/professionalservice"
	appointmentsService "github.com/m04kA/Clinic-SchedulingService/internal/service/appointments"
	changeStatusUC "github.com/m04kA/Clinic-SchedulingService/internal/usecase/change_status"
	createBookingUC "github.com/m04kA/Clinic-SchedulingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/Clinic-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Clinic-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/Clinic-SchedulingService/pkg/logger"
	"github.com/m04kA/Clinic-SchedulingService/pkg/metrics"
	"github.com/m04kA/Clinic-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/Clinic-SchedulingService/pkg/txmanager"
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

	log.Info("Starting Clinic-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Расписание генерации слотов
	schedule, err := cfg.Schedule.ToDomainSchedule()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Slot schedule: %s-%s, step=%dm, default duration=%dm",
		cfg.Schedule.DayStart, cfg.Schedule.DayEnd, schedule.StepMinutes, schedule.DefaultDurationMinutes)

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

	// Инициализируем интеграционных клиентов
	patientClient := patientServiceClient.NewClient(
		cfg.PatientService.URL,
		time.Duration(cfg.PatientService.Timeout)*time.Second,
		log,
	)
	professionalClient := professionalServiceClient.NewClient(
		cfg.ProfessionalService.URL,
		time.Duration(cfg.ProfessionalService.Timeout)*time.Second,
		log,
	)
	clinicalClient := clinicalRecordsClient.NewClient(
		cfg.ClinicalRecords.URL,
		time.Duration(cfg.ClinicalRecords.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PatientService=%s, ProfessionalService=%s, ClinicalRecords=%s)",
		cfg.PatientService.URL, cfg.ProfessionalService.URL, cfg.ClinicalRecords.URL)

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		cancellationRepository *cancellationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		cancellationRepository = cancellationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		cancellationRepository = cancellationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		schedule,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		patientClient,
		professionalClient,
		clinicalClient,
		txMgr,
		log,
	)

	changeStatusUseCase := changeStatusUC.NewUseCase(
		appointmentRepository,
		cancellationRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createBookingUseCase, log)
	changeStatus := changeStatusHandler.NewHandler(changeStatusUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getPatientAppointments := getPatientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getProfessionalAppointments := getProfessionalAppointmentsHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Слоты ---
	// Свободные слоты профессионала на день
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Приёмы ---
	// Создание приёма
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение приёма по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Смена статуса приёма (включая отмену)
	api.HandleFunc("/appointments/{appointmentId}/status", changeStatus.Handle).Methods(http.MethodPatch)

	// История приёмов пациента
	api.HandleFunc("/patients/{patientId}/appointments", getPatientAppointments.Handle).Methods(http.MethodGet)

	// Приёмы профессионала с фильтрацией
	api.HandleFunc("/professionals/{professionalId}/appointments",
		getProfessionalAppointments.Handle).Methods(http.MethodGet)

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
