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

	applyPromoHandler "github.com/m04kA/SMC-TravelService/internal/api/handlers/apply_promo"
	bookingVoucherHandler "github.com/m04kA/SMC-TravelService/internal/api/handlers/booking_voucher"
	computeQuoteHandler "github.com/m04kA/SMC-TravelService/internal/api/handlers/compute_quote"
	confirmBookingHandler "github.com/m04kA/SMC-TravelService/internal/api/handlers/confirm_booking"
	getAvailableDatesHandler "github.com/m04kA/SMC-TravelService/internal/api/handlers/get_available_dates"
	getBookingHandler "github.com/m04kA/SMC-TravelService/internal/api/handlers/get_booking"
	getPackageDetailsHandler "github.com/m04kA/SMC-TravelService/internal/api/handlers/get_package_details"
	searchPackagesHandler "github.com/m04kA/SMC-TravelService/internal/api/handlers/search_packages"
	submitEnquiryHandler "github.com/m04kA/SMC-TravelService/internal/api/handlers/submit_enquiry"
	"github.com/m04kA/SMC-TravelService/internal/api/middleware"
	"github.com/m04kA/SMC-TravelService/internal/config"
	"github.com/m04kA/SMC-TravelService/internal/infra/catalog"
	"github.com/m04kA/SMC-TravelService/internal/infra/quotecache"
	bookingStorage "github.com/m04kA/SMC-TravelService/internal/infra/storage/booking"
	enquiryStorage "github.com/m04kA/SMC-TravelService/internal/infra/storage/enquiry"
	bookingsService "github.com/m04kA/SMC-TravelService/internal/service/bookings"
	packagesService "github.com/m04kA/SMC-TravelService/internal/service/packages"
	pricingService "github.com/m04kA/SMC-TravelService/internal/service/pricing"
	promoService "github.com/m04kA/SMC-TravelService/internal/service/promo"
	voucherService "github.com/m04kA/SMC-TravelService/internal/service/voucher"
	computeQuoteUC "github.com/m04kA/SMC-TravelService/internal/usecase/compute_quote"
	confirmBookingUC "github.com/m04kA/SMC-TravelService/internal/usecase/confirm_booking"
	submitEnquiryUC "github.com/m04kA/SMC-TravelService/internal/usecase/submit_enquiry"
	"github.com/m04kA/SMC-TravelService/pkg/logger"
	"github.com/m04kA/SMC-TravelService/pkg/metrics"
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

	log.Info("Starting SMC-TravelService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем справочник пакетов и таблицу промокодов
	cat, promoTable, err := catalog.NewFromFile(cfg.Catalog.File)
	if err != nil {
		log.Fatal("Failed to load catalog seed: %v", err)
	}
	log.Info("Catalog loaded from %s (%d packages)", cfg.Catalog.File, len(cat.ListPackages(context.Background())))

	// Инициализируем хранилища: PostgreSQL или in-memory
	var (
		bookingWriter confirmBookingUC.BookingStore
		bookingReader bookingsService.BookingStore
		enquiryWriter submitEnquiryUC.EnquiryStore
	)

	if cfg.Database.Enabled {
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

		bookingRepository := bookingStorage.NewRepository(db)
		enquiryRepository := enquiryStorage.NewRepository(db)
		bookingWriter = bookingRepository
		bookingReader = bookingRepository
		enquiryWriter = enquiryRepository
	} else {
		log.Warn("Database disabled, using in-memory stores (data is lost on restart)")
		bookingMem := bookingStorage.NewMemStore()
		bookingWriter = bookingMem
		bookingReader = bookingMem
		enquiryWriter = enquiryStorage.NewMemStore()
	}

	// Инициализируем кэш котировок (если включен)
	var quoteCache computeQuoteUC.QuoteCache
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

		quoteCache = quotecache.New(redisClient, time.Duration(cfg.Redis.QuoteTTL)*time.Second)
		log.Info("Quote cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.QuoteTTL)
	}

	// Инициализируем сервисы
	packagesSvc := packagesService.NewService(cat, log)
	pricingSvc := pricingService.NewService(cat, log)
	promoSvc := promoService.NewService(promoTable, log)
	bookingsSvc := bookingsService.NewService(bookingReader, log)
	voucherSvc := voucherService.NewService(cat, log)

	// Инициализируем use cases
	computeQuoteUseCase := computeQuoteUC.NewUseCase(pricingSvc, quoteCache, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(pricingSvc, promoSvc, bookingWriter, log)
	submitEnquiryUseCase := submitEnquiryUC.NewUseCase(cat, enquiryWriter, log)

	// Инициализируем handlers
	searchPackages := searchPackagesHandler.NewHandler(packagesSvc, log)
	getPackageDetails := getPackageDetailsHandler.NewHandler(packagesSvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(packagesSvc, log)
	computeQuote := computeQuoteHandler.NewHandler(computeQuoteUseCase, log)
	applyPromo := applyPromoHandler.NewHandler(promoSvc, log)
	submitEnquiry := submitEnquiryHandler.NewHandler(submitEnquiryUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	bookingVoucher := bookingVoucherHandler.NewHandler(bookingsSvc, voucherSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог пакетов ---
	// Поиск пакетов по фильтрам
	api.HandleFunc("/packages/search", searchPackages.Handle).Methods(http.MethodPost)

	// Детали пакета
	api.HandleFunc("/packages/{packageId}", getPackageDetails.Handle).Methods(http.MethodGet)

	// Доступные даты выезда
	api.HandleFunc("/packages/{packageId}/departure-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// --- Цены и промокоды ---
	// Серверный расчет котировки
	api.HandleFunc("/quotes", computeQuote.Handle).Methods(http.MethodPost)

	// Применение промокода
	api.HandleFunc("/promos/apply", applyPromo.Handle).Methods(http.MethodPost)

	// --- Заявки и бронирования ---
	// Заявка на обратный звонок
	api.HandleFunc("/enquiries", submitEnquiry.Handle).Methods(http.MethodPost)

	// Подтверждение бронирования
	api.HandleFunc("/bookings", confirmBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ссылке
	api.HandleFunc("/bookings/{bookingRef}", getBooking.Handle).Methods(http.MethodGet)

	// PDF-ваучер бронирования
	api.HandleFunc("/bookings/{bookingRef}/voucher", bookingVoucher.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped gracefully")
}
