package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rumanw99/Hussam-Awa-sub000/internal/service"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/store"
)

// ContentHandler handles the per-section content routes. Object sections
// (hero, about, contact, settings) get fetch/replace; list sections add
// append, update-by-index and delete-by-index, with the target addressed
// via an index query parameter.
type ContentHandler struct {
	service *service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(svc *service.ContentService) *ContentHandler {
	return &ContentHandler{service: svc}
}

// HandleGet returns the current value of a section. Reads never fail for
// a fresh document: the default shape is served instead.
func (h *ContentHandler) HandleGet(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := h.service.Section(r.Context(), section)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
			return
		}
		writeRaw(w, http.StatusOK, raw)
	}
}

// HandleReplace overwrites a whole section with the request body.
func (h *ContentHandler) HandleReplace(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := decodeBody(w, r)
		if !ok {
			return
		}
		res, err := h.service.ReplaceSection(r.Context(), section, raw)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		logDurability(section, res)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

// HandleAppend appends one item to a list section.
func (h *ContentHandler) HandleAppend(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := decodeBody(w, r)
		if !ok {
			return
		}
		res, err := h.service.AppendItem(r.Context(), section, raw)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		logDurability(section, res)
		writeJSON(w, http.StatusCreated, map[string]any{"success": true})
	}
}

// HandleUpdate replaces the item addressed by the index query parameter.
func (h *ContentHandler) HandleUpdate(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := indexParam(w, r)
		if !ok {
			return
		}
		raw, ok := decodeBody(w, r)
		if !ok {
			return
		}
		res, err := h.service.UpdateItem(r.Context(), section, index, raw)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		logDurability(section, res)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

// HandleDelete removes the item addressed by the index query parameter.
func (h *ContentHandler) HandleDelete(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := indexParam(w, r)
		if !ok {
			return
		}
		res, err := h.service.DeleteItem(r.Context(), section, index)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		logDurability(section, res)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

// decodeBody reads the request body as a raw JSON value, answering 400
// on malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return nil, false
	}
	return raw, true
}

// indexParam parses the required index query parameter.
func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	v := r.URL.Query().Get("index")
	if v == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("index parameter is required"))
		return 0, false
	}
	index, err := strconv.Atoi(v)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("index must be a number"))
		return 0, false
	}
	return index, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidItem), errors.Is(err, service.ErrSectionUnknown),
		errors.Is(err, service.ErrTitleRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

// logDurability surfaces writes that only reached process memory.
func logDurability(section string, res store.WriteResult) {
	if res.Durability == store.CachedOnly {
		slog.Warn("section write not durably persisted",
			"section", section,
			"file_error", res.FileErr,
			"mirror_error", res.MirrorErr,
		)
	}
}

func writeRaw(w http.ResponseWriter, status int, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(raw)
}
