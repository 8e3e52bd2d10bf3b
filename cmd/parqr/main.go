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

	deleteCarHandler "github.com/parqr/parqr-backend/internal/api/handlers/delete_car"
	endParkingHandler "github.com/parqr/parqr-backend/internal/api/handlers/end_parking"
	getActiveSessionsHandler "github.com/parqr/parqr-backend/internal/api/handlers/get_active_sessions"
	getParkingHistoryHandler "github.com/parqr/parqr-backend/internal/api/handlers/get_parking_history"
	getProfileHandler "github.com/parqr/parqr-backend/internal/api/handlers/get_profile"
	listCarsHandler "github.com/parqr/parqr-backend/internal/api/handlers/list_cars"
	lookupUserHandler "github.com/parqr/parqr-backend/internal/api/handlers/lookup_user"
	registerCarHandler "github.com/parqr/parqr-backend/internal/api/handlers/register_car"
	registerUserHandler "github.com/parqr/parqr-backend/internal/api/handlers/register_user"
	startParkingHandler "github.com/parqr/parqr-backend/internal/api/handlers/start_parking"
	updateProfileHandler "github.com/parqr/parqr-backend/internal/api/handlers/update_profile"
	"github.com/parqr/parqr-backend/internal/api/middleware"
	"github.com/parqr/parqr-backend/internal/config"
	carRepo "github.com/parqr/parqr-backend/internal/infra/storage/car"
	sessionRepo "github.com/parqr/parqr-backend/internal/infra/storage/session"
	userRepo "github.com/parqr/parqr-backend/internal/infra/storage/user"
	carsService "github.com/parqr/parqr-backend/internal/service/cars"
	parkingService "github.com/parqr/parqr-backend/internal/service/parking"
	usersService "github.com/parqr/parqr-backend/internal/service/users"
	registerUserUC "github.com/parqr/parqr-backend/internal/usecase/register_user"
	startParkingUC "github.com/parqr/parqr-backend/internal/usecase/start_parking"
	"github.com/parqr/parqr-backend/pkg/dbmetrics"
	"github.com/parqr/parqr-backend/pkg/logger"
	"github.com/parqr/parqr-backend/pkg/metrics"
	"github.com/parqr/parqr-backend/pkg/simpletxmanager"
	"github.com/parqr/parqr-backend/pkg/txmanager"
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

	log.Info("Starting parqr-backend...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		userRepository    *userRepo.Repository
		carRepository     *carRepo.Repository
		sessionRepository *sessionRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = userRepo.NewRepository(wrappedDB)
		carRepository = carRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = userRepo.NewRepository(db)
		carRepository = carRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	parkingSvc := parkingService.NewService(sessionRepository, log)
	carsSvc := carsService.NewService(carRepository, log)
	usersSvc := usersService.NewService(userRepository, carRepository, sessionRepository, log)

	// Инициализируем use cases
	registerUserUseCase := registerUserUC.NewUseCase(userRepository, txMgr, log)
	startParkingUseCase := startParkingUC.NewUseCase(carRepository, sessionRepository, txMgr, log)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(registerUserUseCase, log)
	lookupUser := lookupUserHandler.NewHandler(usersSvc, log)
	getProfile := getProfileHandler.NewHandler(usersSvc, log)
	updateProfile := updateProfileHandler.NewHandler(usersSvc, log)
	registerCar := registerCarHandler.NewHandler(carsSvc, log)
	listCars := listCarsHandler.NewHandler(carsSvc, log)
	deleteCar := deleteCarHandler.NewHandler(carsSvc, log)
	startParking := startParkingHandler.NewHandler(startParkingUseCase, log)
	endParking := endParkingHandler.NewHandler(parkingSvc, log)
	getActiveSessions := getActiveSessionsHandler.NewHandler(parkingSvc, log)
	getParkingHistory := getParkingHistoryHandler.NewHandler(parkingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v01").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация пользователя
	api.HandleFunc("/users/register", registerUser.Handle).Methods(http.MethodPost)

	// Публичный профиль по коду пользователя или QR-коду
	api.HandleFunc("/public/{code}", lookupUser.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Профиль ---
	protected.HandleFunc("/users/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/profile", updateProfile.Handle).Methods(http.MethodPut)

	// --- Автомобили ---
	protected.HandleFunc("/cars", registerCar.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/cars/{carId}", deleteCar.Handle).Methods(http.MethodDelete)

	// --- Парковочные сессии ---
	protected.HandleFunc("/parking/start", startParking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/parking/end", endParking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/parking/active", getActiveSessions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/parking/history", getParkingHistory.Handle).Methods(http.MethodGet)

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
