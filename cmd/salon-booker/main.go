package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"salonBooker/internal/auth"
	"salonBooker/internal/booking"
	"salonBooker/internal/config"
	"salonBooker/internal/http-server/handlers/auth/login"
	"salonBooker/internal/http-server/handlers/booking/createBooking"
	"salonBooker/internal/http-server/handlers/booking/getBookings"
	"salonBooker/internal/http-server/handlers/booking/updateBooking"
	"salonBooker/internal/http-server/handlers/service/getServices"
	"salonBooker/internal/http-server/handlers/slot/getSlots"
	"salonBooker/internal/http-server/middleware/mwlogger"
	"salonBooker/internal/lib/logger/handlers/slogpretty"
	"salonBooker/internal/lib/logger/sl"
	"salonBooker/internal/storage"
	"salonBooker/internal/storage/jsonfile"
	"salonBooker/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting salon booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	store, err := setupStorage(&cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	bookingSvc := booking.NewService(store)
	authSvc := auth.NewService(store)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/login", login.New(log, authSvc))
		r.Get("/services", getServices.New(log, store))
		r.Get("/slots", getSlots.New(log, bookingSvc))
		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", createBooking.New(log, bookingSvc))
			r.Get("/", getBookings.New(log, bookingSvc))
			r.Patch("/{id}", updateBooking.New(log, bookingSvc))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n, err := bookingSvc.CancelStalePending(cfg.PendingTTL)
				if err != nil {
					log.Error("failed to cancel stale pending bookings", sl.Err(err))
				} else if n > 0 {
					log.Info("canceled stale pending bookings", slog.Int("count", n))
				}
			case <-stop:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Storage) (storage.Storage, error) {
	if cfg.Type == "postgres" {
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := jsonfile.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
