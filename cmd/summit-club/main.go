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

	"summitclub/internal/config"
	"summitclub/internal/http-server/handlers/auth/loginUser"
	"summitclub/internal/http-server/handlers/auth/logoutUser"
	"summitclub/internal/http-server/handlers/auth/registerUser"
	"summitclub/internal/http-server/handlers/event/getAllEvents"
	"summitclub/internal/http-server/handlers/event/getEventInfo"
	"summitclub/internal/http-server/handlers/event/registerForEvent"
	"summitclub/internal/http-server/handlers/post/createPost"
	"summitclub/internal/http-server/handlers/post/getAllPosts"
	"summitclub/internal/http-server/handlers/user/getDashboard"
	"summitclub/internal/http-server/middleware/mwlogger"
	"summitclub/internal/lib/logger/handlers/slogpretty"
	"summitclub/internal/lib/logger/sl"
	"summitclub/internal/models"
	"summitclub/internal/storage/kv"
	"summitclub/internal/storage/kv/memory"
	"summitclub/internal/storage/postgres"
	"summitclub/internal/storage/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting summit club", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	var backend kv.Backend
	var closeBackend func() error

	switch cfg.Storage.Type {
	case "postgres":
		pg, err := postgres.InitDB(&cfg.Storage.Database)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}
		backend = pg
		closeBackend = pg.Close
	default:
		backend = memory.New()
	}

	store := session.New(kv.New(backend, log), log)
	store.SeedEvents(models.SeedEvents())

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/auth/register", registerUser.New(log, store))
	router.Post("/auth/login", loginUser.New(log, store))
	router.Post("/auth/logout", logoutUser.New(log, store))

	router.Get("/events", getAllEvents.New(log, store))
	router.Get("/events/{id}", getEventInfo.New(log, store))
	router.Post("/events/{id}/register", registerForEvent.New(log, store))

	router.Get("/posts", getAllPosts.New(log, store))
	router.Post("/posts", createPost.New(log, store))

	router.Get("/dashboard", getDashboard.New(log, store))

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if closeBackend != nil {
		if err := closeBackend(); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}
		log.Info("storage connection closed")
	}
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
	default:
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
