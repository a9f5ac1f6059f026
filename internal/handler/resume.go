package handler

import (
	"net/http"

	"github.com/rumanw99/Hussam-Awa-sub000/internal/service"
)

// resumeSection maps the key query parameter to a resume sub-section.
func resumeSection(key string) (string, bool) {
	switch key {
	case "experience":
		return service.SectionExperience, true
	case "skills":
		return service.SectionSkills, true
	case "aboutMe":
		return service.SectionAboutMe, true
	default:
		return "", false
	}
}

// HandleResumeGet returns the whole resume section, or one sub-section
// when a key parameter is given.
func (h *ContentHandler) HandleResumeGet(w http.ResponseWriter, r *http.Request) {
	section := service.SectionResume
	if key := r.URL.Query().Get("key"); key != "" {
		var ok bool
		if section, ok = resumeSection(key); !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse("unknown resume key"))
			return
		}
	}
	h.HandleGet(section)(w, r)
}

// HandleResumeReplace replaces a resume sub-section, or updates one list
// item when an index parameter is present.
func (h *ContentHandler) HandleResumeReplace(w http.ResponseWriter, r *http.Request) {
	section, ok := requireResumeKey(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("index") != "" {
		h.HandleUpdate(section)(w, r)
		return
	}
	h.HandleReplace(section)(w, r)
}

// HandleResumeAppend appends an item to the experience or skills list.
func (h *ContentHandler) HandleResumeAppend(w http.ResponseWriter, r *http.Request) {
	section, ok := requireResumeKey(w, r)
	if !ok {
		return
	}
	if section == service.SectionAboutMe {
		writeJSON(w, http.StatusBadRequest, errorResponse("aboutMe is not a list"))
		return
	}
	h.HandleAppend(section)(w, r)
}

// HandleResumeDelete removes an item from the experience or skills list.
func (h *ContentHandler) HandleResumeDelete(w http.ResponseWriter, r *http.Request) {
	section, ok := requireResumeKey(w, r)
	if !ok {
		return
	}
	if section == service.SectionAboutMe {
		writeJSON(w, http.StatusBadRequest, errorResponse("aboutMe is not a list"))
		return
	}
	h.HandleDelete(section)(w, r)
}

func requireResumeKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("key parameter is required"))
		return "", false
	}
	section, ok := resumeSection(key)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("unknown resume key"))
		return "", false
	}
	return section, true
}
