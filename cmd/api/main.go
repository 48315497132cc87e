package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/placefolio/placefolio-go/internal/config"
	"github.com/placefolio/placefolio-go/internal/geocode"
	"github.com/placefolio/placefolio-go/internal/handler"
	"github.com/placefolio/placefolio-go/internal/middleware"
	"github.com/placefolio/placefolio-go/internal/repository"
	"github.com/placefolio/placefolio-go/internal/service"
	"github.com/placefolio/placefolio-go/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := repository.RunMigrations(context.Background(), db); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	images, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		slog.Error("upload directory unavailable", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	geocoder := geocode.NewClient(cfg.GeocoderURL)

	authService := service.NewAuthService(userRepo, images, cfg.JWTSecret, cfg.JWTExpiry, cfg.BcryptCost)
	userService := service.NewUserService(userRepo)
	placeService := service.NewPlaceService(placeRepo, userRepo, geocoder, images)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	placeHandler := handler.NewPlaceHandler(placeService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Stored images are public once uploaded; entity image paths resolve
	// under this prefix.
	r.Handle("/uploads/images/*", http.StripPrefix("/uploads/images/", http.FileServer(http.Dir(images.Dir()))))

	r.Get("/api/places/{pid}", placeHandler.HandleGet)
	r.Get("/api/places/user/{uid}", placeHandler.HandleListByUser)
	r.Get("/api/users", userHandler.HandleList)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/users/signup", authHandler.HandleSignup)
		r.Post("/api/users/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/api/places", placeHandler.HandleCreate)
		r.Patch("/api/places/{pid}", placeHandler.HandleUpdate)
		r.Delete("/api/places/{pid}", placeHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
