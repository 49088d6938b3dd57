package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/cancel_reservation"
	closeSessionHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/close_session"
	confirmBookingHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/confirm_booking"
	getReservationsHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/get_reservations"
	getResourcesHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/get_resources"
	getSessionHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/get_session"
	getWeekGridHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/get_week_grid"
	goBackHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/go_back"
	highlightCellHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/highlight_cell"
	navigateHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/navigate"
	selectResourceHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/select_resource"
	selectSlotHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/select_slot"
	setReferenceDateHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/set_reference_date"
	startSessionHandler "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers/start_session"
	"github.com/m04kA/SMC-SpaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SpaceBooking/internal/calendar"
	"github.com/m04kA/SMC-SpaceBooking/internal/catalog"
	"github.com/m04kA/SMC-SpaceBooking/internal/config"
	"github.com/m04kA/SMC-SpaceBooking/internal/reservations"
	"github.com/m04kA/SMC-SpaceBooking/internal/session"
	"github.com/m04kA/SMC-SpaceBooking/pkg/logger"
	"github.com/m04kA/SMC-SpaceBooking/pkg/metrics"
)

func main() {
	// Переменные окружения из .env (файл необязателен)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

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

	log.Info("Starting SMC-SpaceBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог ресурсов и занятые ячейки из конфига
	resources, err := cfg.Resources()
	if err != nil {
		log.Fatal("Failed to build catalog from config: %v", err)
	}
	resourceCatalog, err := catalog.New(resources)
	if err != nil {
		log.Fatal("Failed to initialize catalog: %v", err)
	}

	slotCalendar, err := calendar.New(cfg.Bookings())
	if err != nil {
		log.Fatal("Failed to initialize calendar: %v", err)
	}
	log.Info("Catalog loaded (resources=%d, existing_bookings=%d)",
		resourceCatalog.Len(), len(slotCalendar.Bookings()))

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}

	// Менеджер сессий бронирования
	sessions := session.NewManager(session.Deps{
		Catalog:  resourceCatalog,
		Calendar: slotCalendar,
		Clock:    reservations.RealTimeProvider{},
		Metrics:  metricsCollector,
		Logger:   log,
	}, session.Config{
		MaxSessions:     cfg.Booking.MaxSessions,
		IdleTimeout:     time.Duration(cfg.Booking.SessionIdleTimeout) * time.Second,
		DefaultUserName: cfg.Booking.DefaultUserName,
		Location:        location,
	})
	log.Info("Session manager initialized (max_sessions=%d, idle_timeout=%ds, timezone=%s)",
		cfg.Booking.MaxSessions, cfg.Booking.SessionIdleTimeout, location)

	// Инициализируем handlers
	getResources := getResourcesHandler.NewHandler(resourceCatalog, log)
	startSession := startSessionHandler.NewHandler(sessions, log)
	getSession := getSessionHandler.NewHandler(sessions, log)
	closeSession := closeSessionHandler.NewHandler(sessions, log)
	navigate := navigateHandler.NewHandler(sessions, log)
	getWeekGrid := getWeekGridHandler.NewHandler(sessions, log)
	setReferenceDate := setReferenceDateHandler.NewHandler(sessions, location, log)
	selectResource := selectResourceHandler.NewHandler(sessions, log)
	highlightCell := highlightCellHandler.NewHandler(sessions, log)
	selectSlot := selectSlotHandler.NewHandler(sessions, log)
	goBack := goBackHandler.NewHandler(sessions, log)
	confirmBooking := confirmBookingHandler.NewHandler(sessions, log)
	getReservations := getReservationsHandler.NewHandler(sessions, log)
	cancelReservation := cancelReservationHandler.NewHandler(sessions, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.Server.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst,
			cfg.Server.TrustProxyHeaders, log)
		api.Use(limiter.Middleware())
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	// --- Каталог ---
	api.HandleFunc("/resources", getResources.Handle).Methods(http.MethodGet)

	// --- Сессии ---
	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/screen", navigate.Handle).Methods(http.MethodPut)

	// --- Календарь ---
	api.HandleFunc("/sessions/{sessionId}/week", getWeekGrid.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/date", setReferenceDate.Handle).Methods(http.MethodPut)

	// --- Сценарий бронирования ---
	api.HandleFunc("/sessions/{sessionId}/resource", selectResource.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/highlight", highlightCell.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/slot", selectSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/back", goBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// --- Мои бронирования ---
	api.HandleFunc("/sessions/{sessionId}/reservations", getReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/reservations/{reservationId}/cancel",
		cancelReservation.Handle).Methods(http.MethodPatch)

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

	log.Info("Server stopped gracefully (sessions_open=%d)", sessions.Len())
}
