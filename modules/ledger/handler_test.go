package ledger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBalanceAndPurchaseEndpoints(t *testing.T) {
	svc := newTestLedger(t)
	handler := NewHandler(svc)

	rec := httptest.NewRecorder()
	handler.HandleGetBalance(rec, httptest.NewRequest("GET", "/api/credits", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get balance returned %d", rec.Code)
	}

	var resp map[string]int
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["credits"] != 20 {
		t.Fatalf("expected 20 credits, got %d", resp["credits"])
	}

	rec = httptest.NewRecorder()
	body := strings.NewReader(`{"amount":100,"paymentToken":"tok_mock"}`)
	handler.HandlePurchase(rec, httptest.NewRequest("POST", "/api/credits/purchase", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("purchase returned %d", rec.Code)
	}

	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["credits"] != 120 {
		t.Fatalf("expected 120 credits after purchase, got %d", resp["credits"])
	}
}

func TestPurchaseRejectsNonPositiveAmount(t *testing.T) {
	handler := NewHandler(newTestLedger(t))

	rec := httptest.NewRecorder()
	handler.HandlePurchase(rec, httptest.NewRequest("POST", "/api/credits/purchase", strings.NewReader(`{"amount":0}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero amount, got %d", rec.Code)
	}
}
