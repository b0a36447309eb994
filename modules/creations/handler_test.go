package creations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"adstudio-server/modules/common/kvstore"
	"adstudio-server/modules/common/model"
	"adstudio-server/modules/common/utils"
)

func newTestRouter(store *Store) *mux.Router {
	handler := NewHandler(store)
	r := mux.NewRouter()
	r.HandleFunc("/api/creations", handler.HandleList).Methods("GET")
	r.HandleFunc("/api/creations/clear", handler.HandleClear).Methods("POST")
	r.HandleFunc("/api/creations/{id}", handler.HandleDelete).Methods("DELETE")
	r.HandleFunc("/api/creations/{id}/download", handler.HandleDownload).Methods("GET")
	return r
}

func TestListAndDeleteRoundTrip(t *testing.T) {
	store := NewStore(kvstore.NewMemoryStore())
	creation, _ := store.Add(context.Background(), newCandidate("social-media"))
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/creations", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}

	var listResp struct {
		Creations []model.Creation `json:"creations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("bad list body: %v", err)
	}
	if len(listResp.Creations) != 1 || listResp.Creations[0].ID != creation.ID {
		t.Fatalf("unexpected list: %+v", listResp.Creations)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/creations/"+creation.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete returned %d", rec.Code)
	}

	list, _ := store.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("expected empty store after delete, got %d", len(list))
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	store := NewStore(kvstore.NewMemoryStore())
	store.Add(context.Background(), newCandidate("social-media"))
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/creations/clear", strings.NewReader(`{}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unconfirmed clear must be rejected, got %d", rec.Code)
	}
	if list, _ := store.List(context.Background()); len(list) != 1 {
		t.Fatal("unconfirmed clear must not mutate the store")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/creations/clear", strings.NewReader(`{"confirm":true}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("confirmed clear returned %d", rec.Code)
	}
	if list, _ := store.List(context.Background()); len(list) != 0 {
		t.Fatal("confirmed clear must empty the store")
	}
}

func TestDownloadServesArtifactWithFilename(t *testing.T) {
	store := NewStore(kvstore.NewMemoryStore())

	candidate := newCandidate("studio-shot")
	candidate.GeneratedImage = utils.DataURI("image/png", []byte("fake-png-bytes"))
	creation, _ := store.Add(context.Background(), candidate)

	router := newTestRouter(store)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/creations/"+creation.ID+"/download", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("download returned %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `"studio-shot-ad.png"`) {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if rec.Body.String() != "fake-png-bytes" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestDownloadUnknownCreation(t *testing.T) {
	router := newTestRouter(NewStore(kvstore.NewMemoryStore()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/creations/creation-0/download", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown creation, got %d", rec.Code)
	}
}
