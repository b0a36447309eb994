package ledger

import (
	"encoding/json"
	"log"
	"net/http"

	"adstudio-server/modules/common/apperr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PurchaseRequest - the payment token is a non-functional mock; it is logged
// and otherwise ignored
type PurchaseRequest struct {
	Amount       int    `json:"amount"`
	PaymentToken string `json:"paymentToken"`
}

// HandleGetBalance - GET /api/credits
func (h *Handler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	balance := h.service.GetBalance(r.Context())
	json.NewEncoder(w).Encode(map[string]int{"credits": balance})
}

// HandlePurchase - POST /api/credits/purchase
func (h *Handler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.NewValidation("Invalid request format."))
		return
	}

	if req.PaymentToken != "" {
		log.Printf("💳 Simulating purchase with token: %s", req.PaymentToken)
	}

	newBalance, err := h.service.Purchase(r.Context(), req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]int{"credits": newBalance})
}

func writeError(w http.ResponseWriter, err error) {
	w.WriteHeader(apperr.HTTPStatus(err))
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
