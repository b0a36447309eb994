package progress

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestBroadcastWithoutListeners(t *testing.T) {
	hub := NewHub()
	// Publishing into an empty hub must be a no-op, not a panic
	hub.GenerationStatus("req-1", "social-media", "generating", "")
}

func TestBroadcastReachesListener(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// The handshake can complete before the server registers the client,
	// so keep publishing until the listener hears something
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-time.After(20 * time.Millisecond):
				hub.GenerationStatus("req-1", "video-ad", "generating", "")
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("no event received: %v", err)
	}

	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		t.Fatalf("bad event payload: %v", err)
	}
	if event.Type != "generation_status" || event.RequestID != "req-1" ||
		event.FormatID != "video-ad" || event.Phase != "generating" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.Timestamp == 0 {
		t.Fatal("event must carry a timestamp")
	}
}
