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

	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getVendorConfigHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_vendor_config"
	resetVendorConfigHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/reset_vendor_config"
	updateVendorConfigHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_vendor_config"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	travelCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/travel"
	appointmentRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/catalog"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/config"
	staffRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/staff"
	vendorRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/vendor"
	travelServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/travelservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	configService "github.com/m04kA/SMC-AvailabilityService/internal/service/config"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		configPath = path
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", configPath)

	defaultLocation, err := cfg.Search.Location()
	if err != nil {
		log.Fatal("Failed to load default timezone %q: %v", cfg.Search.DefaultTimezone, err)
	}

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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают через обёртку с метриками, если они включены
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	vendorRepository := vendorRepo.NewRepository(executor)
	staffRepository := staffRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)
	appointmentRepository := appointmentRepo.NewRepository(executor)
	configRepository := configRepo.NewRepository(executor)

	// Оценка времени в пути: клиент сервиса + кэш в Redis
	var travelEstimator getAvailableSlotsUC.TravelEstimator
	var redisClient *redis.Client

	if cfg.TravelService.URL != "" {
		travelClient := travelServiceClient.NewClient(
			cfg.TravelService.URL,
			time.Duration(cfg.TravelService.Timeout)*time.Second,
			cfg.TravelService.RequestsPerSecond,
			cfg.TravelService.Burst,
			log,
		)
		travelEstimator = travelClient
		log.Info("Travel service client initialized (url=%s, timeout=%ds, rps=%.1f)",
			cfg.TravelService.URL, cfg.TravelService.Timeout, cfg.TravelService.RequestsPerSecond)

		if cfg.Redis.Enabled {
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})

			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := redisClient.Ping(pingCtx).Err(); err != nil {
				log.Warn("Redis is unavailable at %s, travel estimates will not be cached until it recovers: %v",
					cfg.Redis.Addr, err)
			}
			cancel()

			travelEstimator = travelCache.NewCache(redisClient, travelClient, cfg.Redis.TravelTTL(), log)
			log.Info("Travel estimate cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TravelTTL())
		}
	} else {
		log.Warn("Travel service URL is not configured, home service searches will use fallback travel estimate")
	}

	// Движок поиска
	engine := availability.NewEngine(cfg.Search.Workers, log, metricsCollector)

	// Инициализируем сервисы и use cases
	configSvc := configService.NewService(configRepository, vendorRepository, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		vendorRepository,
		staffRepository,
		catalogRepository,
		appointmentRepository,
		configRepository,
		travelEstimator,
		engine,
		metricsCollector,
		defaultLocation,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getVendorConfig := getVendorConfigHandler.NewHandler(configSvc, log)
	updateVendorConfig := updateVendorConfigHandler.NewHandler(configSvc, log)
	resetVendorConfig := resetVendorConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Поиск доступных слотов под последовательность услуг
	api.HandleFunc("/vendors/{vendorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodPost)

	// Настройки поиска салона
	api.HandleFunc("/vendors/{vendorId}/config", getVendorConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{vendorId}/config", updateVendorConfig.Handle).Methods(http.MethodPut)
	api.HandleFunc("/vendors/{vendorId}/config", resetVendorConfig.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
