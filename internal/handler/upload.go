package handler

import (
	"errors"
	"net/http"

	"github.com/rumanw99/Hussam-Awa-sub000/internal/service"
)

// UploadHandler handles media uploads for the admin panel.
type UploadHandler struct {
	service *service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{service: svc}
}

// HandleUpload handles POST /api/upload requests. The file travels as
// the multipart field "file"; the response carries its public path.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	// Videos up to 50MB plus form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxVideoSize+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("file field is required"))
		return
	}
	defer file.Close()

	path, err := h.service.Save(header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTypeNotAllowed),
			errors.Is(err, service.ErrImageTooLarge),
			errors.Is(err, service.ErrVideoTooLarge):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"path": path})
}
