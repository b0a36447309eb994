package creations

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"adstudio-server/modules/common/apperr"
	"adstudio-server/modules/common/utils"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// HandleList - GET /api/creations
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	creations, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"creations": creations,
	})
}

// HandleDelete - DELETE /api/creations/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.Remove(r.Context(), id); err != nil {
		w.Header().Set("Content-Type", "application/json")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleClear - POST /api/creations/clear
// Clearing is irreversible, so the request must carry explicit confirmation.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Confirm {
		writeError(w, apperr.NewValidation("Clearing all creations cannot be undone. Send {\"confirm\": true} to proceed."))
		return
	}

	if err := h.store.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
}

// HandleDownload - GET /api/creations/{id}/download
// Serves the generated artifact as an attachment named <formatId>-ad.<ext>.
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	creation, found, err := h.store.Get(r.Context(), id)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		writeError(w, err)
		return
	}
	if !found {
		http.Error(w, "creation not found", http.StatusNotFound)
		return
	}

	var artifact string
	var ext string
	switch {
	case creation.GeneratedImage != "":
		artifact = creation.GeneratedImage
		ext = "png"
	case creation.GeneratedVideoURL != "":
		artifact = creation.GeneratedVideoURL
		ext = "mp4"
	default:
		http.Error(w, "creation has no downloadable artifact", http.StatusNotFound)
		return
	}

	mimeType, data, err := utils.ParseDataURI(artifact)
	if err != nil {
		http.Error(w, "stored artifact is not downloadable", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s-ad.%s", creation.AdFormatID, ext)
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

func writeError(w http.ResponseWriter, err error) {
	w.WriteHeader(apperr.HTTPStatus(err))
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
