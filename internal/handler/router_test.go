package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/middleware"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/service"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/session"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/store"
)

const (
	testSecret   = "test-secret"
	testAdmin    = "admin@example.com"
	testPassword = "letmein"
)

// newTestRouter assembles the same routing as cmd/api, backed by a
// temp-dir store and no external mirror.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	publicDir := filepath.Join(dir, "public")
	if err := os.MkdirAll(publicDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(publicDir, "index.html"), []byte("<html>site</html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	st := store.New(filepath.Join(dir, "content.json"), nil)
	cache := store.NewSectionCache(0)
	cookieOpts := session.CookieOptions{}

	authHandler := NewAuthHandler(service.NewAuthService(testAdmin, testPassword, "", testSecret), cookieOpts)
	contentHandler := NewContentHandler(service.NewContentService(st, cache))
	uploadHandler := NewUploadHandler(service.NewUploadService(filepath.Join(dir, "uploads")))
	guard := middleware.NewGuard(testSecret, testAdmin, cookieOpts)
	pages := NewPagesHandler(publicDir)

	r := chi.NewRouter()
	r.Use(guard.Pages)

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

	r.NotFound(pages.ServeHTTP)
	return r
}
