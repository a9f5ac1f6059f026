package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rumanw99/Hussam-Awa-sub000/internal/model"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/service"
)

// HandleBlogCreate handles POST /api/blog requests. The post id is
// generated server-side and returned in the response.
func (h *ContentHandler) HandleBlogCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var post model.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	created, res, err := h.service.CreateBlogPost(r.Context(), post)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	logDurability(service.SectionBlog, res)
	writeJSON(w, http.StatusCreated, created)
}

// HandleBlogUpdate handles PUT /api/blog?id= requests.
func (h *ContentHandler) HandleBlogUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	raw, ok := decodeBody(w, r)
	if !ok {
		return
	}

	res, err := h.service.UpdateBlogPost(r.Context(), id, raw)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	logDurability(service.SectionBlog, res)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// HandleBlogDelete handles DELETE /api/blog?id= requests.
func (h *ContentHandler) HandleBlogDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.DeleteBlogPost(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	logDurability(service.SectionBlog, res)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// idParam parses the required id query parameter.
func idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("id parameter is required"))
		return "", false
	}
	return id, true
}
