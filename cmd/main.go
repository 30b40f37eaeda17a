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

	cancelAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_appointment"
	createProfessionalHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_professional"
	createServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/delete_service"
	deleteWorkingHoursHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/delete_working_hours"
	finalizeAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/finalize_appointment"
	getAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_client_appointments"
	getProfessionalScheduleHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_professional_schedule"
	getServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_service"
	getWorkingHoursHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_working_hours"
	listServicesHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/list_services"
	updateServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_service"
	upsertWorkingHoursHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/upsert_working_hours"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/config"
	slotsCache "github.com/m04kA/Salon-BookingService/internal/infra/cache/slots"
	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	professionalRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/service"
	workingHoursRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/workinghours"
	authServiceClient "github.com/m04kA/Salon-BookingService/internal/integrations/authservice"
	appointmentsService "github.com/m04kA/Salon-BookingService/internal/service/appointments"
	catalogService "github.com/m04kA/Salon-BookingService/internal/service/catalog"
	scheduleService "github.com/m04kA/Salon-BookingService/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/Salon-BookingService/internal/usecase/create_appointment"
	createProfessionalUC "github.com/m04kA/Salon-BookingService/internal/usecase/create_professional"
	getAvailableSlotsUC "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/logger"
	"github.com/m04kA/Salon-BookingService/pkg/metrics"
	"github.com/m04kA/Salon-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Salon-BookingService/pkg/txmanager"
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

	log.Info("Starting Salon-BookingService...")
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

	// Инициализируем кеш слотов (если включен)
	var cache *slotsCache.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		cache = slotsCache.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
		log.Info("Slots cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем клиент сервиса аутентификации
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		cfg.AuthService.AdminToken,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("AuthService client initialized (url=%s, timeout=%ds)", cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		serviceRepository      *serviceRepo.Repository
		workingHoursRepository *workingHoursRepo.Repository
		professionalRepository *professionalRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		workingHoursRepository = workingHoursRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		workingHoursRepository = workingHoursRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Типизированный nil в интерфейсе не равен nil, поэтому кеш
	// подставляется в зависимые компоненты только когда он включен
	var (
		slotsReadCache   getAvailableSlotsUC.SlotsCache
		slotsInvalidator createAppointmentUC.SlotsCacheInvalidator
		apptInvalidator  appointmentsService.SlotsCacheInvalidator
	)
	if cache != nil {
		slotsReadCache = cache
		slotsInvalidator = cache
		apptInvalidator = cache
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, apptInvalidator, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	scheduleSvc := scheduleService.NewService(workingHoursRepository, professionalRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		workingHoursRepository,
		professionalRepository,
		slotsReadCache,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		workingHoursRepository,
		professionalRepository,
		txMgr,
		slotsInvalidator,
		log,
	)
	createProfessionalUseCase := createProfessionalUC.NewUseCase(
		professionalRepository,
		authClient,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	finalizeAppointment := finalizeAppointmentHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getProfessionalSchedule := getProfessionalScheduleHandler.NewHandler(appointmentSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(createProfessionalUseCase, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	upsertWorkingHours := upsertWorkingHoursHandler.NewHandler(scheduleSvc, log)
	deleteWorkingHours := deleteWorkingHoursHandler.NewHandler(scheduleSvc, log)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов для записи
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Публичный каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Завершение записи
	protected.HandleFunc("/appointments/{appointmentId}/finalize", finalizeAppointment.Handle).Methods(http.MethodPatch)

	// История записей клиента по телефону
	protected.HandleFunc("/clients/{clientPhone}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// Расписание профессионала
	protected.HandleFunc("/professionals/{professionalId}/appointments",
		getProfessionalSchedule.Handle).Methods(http.MethodGet)

	// --- Управление каталогом услуг ---
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Управление рабочими часами ---
	protected.HandleFunc("/professionals/{professionalId}/working-hours",
		getWorkingHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/working-hours",
		upsertWorkingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/professionals/{professionalId}/working-hours/{weekday}",
		deleteWorkingHours.Handle).Methods(http.MethodDelete)

	// --- Провижининг профессионалов ---
	protected.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)

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
