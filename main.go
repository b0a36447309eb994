package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"adstudio-server/modules/common/config"
	"adstudio-server/modules/common/kvstore"
	redisclient "adstudio-server/modules/common/redis"
	"adstudio-server/modules/creations"
	"adstudio-server/modules/formats"
	"adstudio-server/modules/gemini"
	"adstudio-server/modules/ledger"
	"adstudio-server/modules/progress"
	"adstudio-server/modules/studio"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Persistence: redis when configured, in-memory otherwise
	var kv kvstore.Store
	if cfg.RedisHost != "" {
		rdb := redisclient.Connect(cfg)
		if rdb == nil {
			log.Fatal("❌ Failed to connect to Redis")
		}
		log.Println("✅ Redis connected successfully")
		kv = kvstore.NewRedisStore(rdb)
	} else {
		log.Println("⚠️  REDIS_HOST not set - creations and credits will not survive a restart")
		kv = kvstore.NewMemoryStore()
	}

	genService, err := gemini.NewService(context.Background())
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini service: %v", err)
	}

	ledgerService := ledger.NewService(kv, ledger.NewJournal())
	creationStore := creations.NewStore(kv)
	hub := progress.NewHub()
	studioService := studio.NewService(genService, ledgerService, creationStore, hub)

	formatsHandler := formats.NewHandler()
	ledgerHandler := ledger.NewHandler(ledgerService)
	creationsHandler := creations.NewHandler(creationStore)
	studioHandler := studio.NewHandler(studioService, ledgerService)

	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")

	r.HandleFunc("/api/formats", formatsHandler.HandleList).Methods("GET")

	r.HandleFunc("/api/credits", ledgerHandler.HandleGetBalance).Methods("GET")
	r.HandleFunc("/api/credits/purchase", ledgerHandler.HandlePurchase).Methods("POST")

	r.HandleFunc("/api/creations", creationsHandler.HandleList).Methods("GET")
	r.HandleFunc("/api/creations/clear", creationsHandler.HandleClear).Methods("POST")
	r.HandleFunc("/api/creations/{id}", creationsHandler.HandleDelete).Methods("DELETE")
	r.HandleFunc("/api/creations/{id}/download", creationsHandler.HandleDownload).Methods("GET")

	r.HandleFunc("/api/studio/state", studioHandler.HandleState).Methods("GET")
	r.HandleFunc("/api/studio/upload", studioHandler.HandleUpload).Methods("POST")
	r.HandleFunc("/api/studio/image", studioHandler.HandleRemoveImage).Methods("DELETE")
	r.HandleFunc("/api/studio/format", studioHandler.HandleSelectFormat).Methods("POST")
	r.HandleFunc("/api/studio/prompt", studioHandler.HandleSetPrompt).Methods("POST")
	r.HandleFunc("/api/studio/copy", studioHandler.HandleSetAdCopy).Methods("POST")
	r.HandleFunc("/api/studio/generate", studioHandler.HandleGenerate).Methods("POST")
	r.HandleFunc("/api/studio/suggest", studioHandler.HandleSuggestSlogans).Methods("POST")
	r.HandleFunc("/api/studio/remix", studioHandler.HandleRemix).Methods("POST")

	r.HandleFunc("/ws/progress", hub.HandleWS)

	log.Printf("🚀 AI Ad Studio Server starting on port %s", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("🎨 Generate: http://localhost:%s/api/studio/generate", cfg.Port)
	log.Printf("📡 Progress events: ws://localhost:%s/ws/progress", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// enableCORS - the browser client is served from a different origin
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "adstudio-server",
	})
}
