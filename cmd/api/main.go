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
	"github.com/rumanw99/Hussam-Awa-sub000/internal/config"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/handler"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/middleware"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/service"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/session"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// The external KV mirror is optional; without it the store still
	// works off the local snapshot.
	var kv store.KV
	if cfg.RedisAddr != "" {
		redisKV, err := store.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			slog.Warn("redis connection failed — continuing without mirror", "error", err)
		} else {
			kv = redisKV
		}
	}

	st := store.New(cfg.DataFile, kv)
	cache := store.NewSectionCache(0)

	cookieOpts := session.CookieOptions{Secure: !cfg.IsDevelopment()}

	authService := service.NewAuthService(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminPasswordHash, cfg.JWTSecret)
	authHandler := handler.NewAuthHandler(authService, cookieOpts)

	contentService := service.NewContentService(st, cache)
	contentHandler := handler.NewContentHandler(contentService)

	uploadService := service.NewUploadService(cfg.UploadDir)
	uploadHandler := handler.NewUploadHandler(uploadService)

	guard := middleware.NewGuard(cfg.JWTSecret, cfg.AdminEmail, cookieOpts)
	pages := handler.NewPagesHandler(cfg.PublicDir)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(guard.Pages)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)

		for _, section := range []string{
			service.SectionHero,
			service.SectionAbout,
			service.SectionContact,
			service.SectionSettings,
		} {
			r.Get("/"+section, contentHandler.HandleGet(section))
			r.Put("/"+section, contentHandler.HandleReplace(section))
		}

		r.Get("/resume", contentHandler.HandleResumeGet)
		r.Put("/resume", contentHandler.HandleResumeReplace)
		r.Post("/resume", contentHandler.HandleResumeAppend)
		r.Delete("/resume", contentHandler.HandleResumeDelete)

		for _, section := range []string{
			service.SectionPhotos,
			service.SectionVideos,
			service.SectionTestimonials,
		} {
			r.Get("/"+section, contentHandler.HandleGet(section))
			r.Post("/"+section, contentHandler.HandleAppend(section))
			r.Put("/"+section, contentHandler.HandleUpdate(section))
			r.Delete("/"+section, contentHandler.HandleDelete(section))
		}

		r.Get("/blog", contentHandler.HandleGet(service.SectionBlog))
		r.Post("/blog", contentHandler.HandleBlogCreate)
		r.Put("/blog", contentHandler.HandleBlogUpdate)
		r.Delete("/blog", contentHandler.HandleBlogDelete)

		r.Post("/upload", uploadHandler.HandleUpload)
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	r.NotFound(pages.ServeHTTP)

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
