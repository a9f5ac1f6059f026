package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// PagesHandler serves the static site and admin pages out of the public
// directory. Missing paths fall back to index.html so client-side
// routing on the admin pages keeps working.
type PagesHandler struct {
	publicDir string
}

// NewPagesHandler creates a PagesHandler over the given directory.
func NewPagesHandler(publicDir string) *PagesHandler {
	return &PagesHandler{publicDir: publicDir}
}

func (h *PagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqPath := strings.TrimPrefix(r.URL.Path, "/")
	if reqPath == "" {
		reqPath = "index.html"
	}

	candidate := filepath.Join(h.publicDir, filepath.Clean("/"+reqPath))
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		http.ServeFile(w, r, candidate)
		return
	}
	if info, err := os.Stat(candidate + ".html"); err == nil && !info.IsDir() {
		http.ServeFile(w, r, candidate+".html")
		return
	}

	index := filepath.Join(h.publicDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
