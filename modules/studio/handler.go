package studio

import (
	"encoding/json"
	"net/http"

	"adstudio-server/modules/common/apperr"
)

type Handler struct {
	service *Service
	ledger  Ledger
}

func NewHandler(service *Service, ledger Ledger) *Handler {
	return &Handler{service: service, ledger: ledger}
}

// HandleState - GET /api/studio/state
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.service.State())
}

// HandleUpload - POST /api/studio/upload
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.NewValidation("Invalid request format."))
		return
	}

	if err := h.service.UploadImage(req.Image); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, h.service.State())
}

// HandleRemoveImage - DELETE /api/studio/image
func (h *Handler) HandleRemoveImage(w http.ResponseWriter, r *http.Request) {
	h.service.RemoveImage()
	writeJSON(w, h.service.State())
}

// HandleSelectFormat - POST /api/studio/format
func (h *Handler) HandleSelectFormat(w http.ResponseWriter, r *http.Request) {
	var req SelectFormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.NewValidation("Invalid request format."))
		return
	}

	if err := h.service.SelectFormat(req.FormatID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, h.service.State())
}

// HandleSetPrompt - POST /api/studio/prompt
func (h *Handler) HandleSetPrompt(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.NewValidation("Invalid request format."))
		return
	}

	h.service.SetPrompt(req.Prompt)
	writeJSON(w, h.service.State())
}

// HandleSetAdCopy - POST /api/studio/copy
func (h *Handler) HandleSetAdCopy(w http.ResponseWriter, r *http.Request) {
	var req AdCopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.NewValidation("Invalid request format."))
		return
	}

	h.service.SetAdCopy(req.AdCopy)
	writeJSON(w, h.service.State())
}

// HandleGenerate - POST /api/studio/generate
// Runs the full workflow synchronously; video formats can take minutes.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	creation, err := h.service.Generate(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	credits := h.ledger.GetBalance(r.Context())
	writeJSON(w, map[string]interface{}{
		"creation": creation,
		"credits":  credits,
	})
}

// HandleSuggestSlogans - POST /api/studio/suggest
func (h *Handler) HandleSuggestSlogans(w http.ResponseWriter, r *http.Request) {
	slogans, err := h.service.SuggestSlogans(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{"slogans": slogans})
}

// HandleRemix - POST /api/studio/remix
func (h *Handler) HandleRemix(w http.ResponseWriter, r *http.Request) {
	var req RemixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.NewValidation("Invalid request format."))
		return
	}

	snapshot, err := h.service.Remix(r.Context(), req.CreationID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, snapshot)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperr.HTTPStatus(err))
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
