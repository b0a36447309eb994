// Package creations is the durable gallery: an ordered (newest-first)
// collection of past generation results with their inputs.
package creations

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"adstudio-server/modules/common/apperr"
	"adstudio-server/modules/common/kvstore"
	"adstudio-server/modules/common/model"
	"adstudio-server/modules/common/utils"
)

const creationsKey = "adstudio:creations"

const thumbnailQuality = 90.0

type Store struct {
	mu sync.Mutex
	kv kvstore.Store
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// List - all creations, newest first
func (s *Store) List(ctx context.Context) ([]model.Creation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx), nil
}

// Get - single creation by id
func (s *Store) Get(ctx context.Context, id string) (model.Creation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.load(ctx) {
		if c.ID == id {
			return c, true, nil
		}
	}
	return model.Creation{}, false, nil
}

// Add - assign identity and timestamp, prepend, persist. The candidate's ID
// and Timestamp fields are overwritten.
func (s *Store) Add(ctx context.Context, candidate model.Creation) (model.Creation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.load(ctx)

	// Identity derives from creation time; bump the millisecond when two
	// adds land inside the same one
	millis := time.Now().UnixMilli()
	for hasID(existing, fmt.Sprintf("creation-%d", millis)) {
		millis++
	}
	candidate.ID = fmt.Sprintf("creation-%d", millis)
	candidate.Timestamp = millis
	candidate.ThumbnailWebP = makeThumbnail(candidate.GeneratedImage)

	updated := append([]model.Creation{candidate}, existing...)
	if err := s.save(ctx, updated); err != nil {
		return model.Creation{}, err
	}

	log.Printf("🖼️  Creation saved: %s (%s, total: %d)", candidate.ID, candidate.AdFormatID, len(updated))
	return candidate, nil
}

// Remove - delete by id; a missing id is a no-op
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.load(ctx)
	updated := existing[:0:0]
	for _, c := range existing {
		if c.ID != id {
			updated = append(updated, c)
		}
	}

	if len(updated) == len(existing) {
		return nil
	}

	log.Printf("🗑️  Creation removed: %s", id)
	return s.save(ctx, updated)
}

// Clear - empty the collection. Destructive; the caller must have confirmed.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Println("🗑️  Clearing all creations")
	return s.save(ctx, []model.Creation{})
}

// load - read the persisted list; unreadable or corrupt data degrades to an
// empty gallery rather than failing
func (s *Store) load(ctx context.Context) []model.Creation {
	raw, err := s.kv.Get(ctx, creationsKey)
	if err == kvstore.ErrNotFound {
		return []model.Creation{}
	}
	if err != nil {
		log.Printf("⚠️  Failed to read creations, starting empty: %v", err)
		return []model.Creation{}
	}

	var creations []model.Creation
	if err := json.Unmarshal([]byte(raw), &creations); err != nil {
		log.Printf("⚠️  Corrupt creations data, starting empty: %v", err)
		return []model.Creation{}
	}
	return creations
}

func (s *Store) save(ctx context.Context, creations []model.Creation) error {
	data, err := json.Marshal(creations)
	if err != nil {
		return &apperr.StorageError{Op: "save your creations", Err: err}
	}
	if err := s.kv.Set(ctx, creationsKey, string(data)); err != nil {
		log.Printf("❌ Failed to persist creations: %v", err)
		return &apperr.StorageError{Op: "save your creations", Err: err}
	}
	return nil
}

func hasID(creations []model.Creation, id string) bool {
	for _, c := range creations {
		if c.ID == id {
			return true
		}
	}
	return false
}

// makeThumbnail - WebP preview of the generated image; best effort
func makeThumbnail(generatedImage string) string {
	if generatedImage == "" {
		return ""
	}

	_, imageData, err := utils.ParseDataURI(generatedImage)
	if err != nil {
		log.Printf("⚠️  Skipping thumbnail, unreadable image data: %v", err)
		return ""
	}

	webpData, err := utils.ConvertImageToWebP(imageData, thumbnailQuality)
	if err != nil {
		log.Printf("⚠️  Skipping thumbnail, WebP conversion failed: %v", err)
		return ""
	}

	return base64.StdEncoding.EncodeToString(webpData)
}
