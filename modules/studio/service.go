// Package studio is the stateful coordinator of the generate-and-persist
// workflow. It owns the working state (uploaded image, selected format,
// prompt, copy, result, error slot) and sequences the generation client,
// credit ledger and creation store so that a Creation only ever exists for a
// successfully generated, successfully paid result.
package studio

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"adstudio-server/modules/common/apperr"
	"adstudio-server/modules/common/model"
	"adstudio-server/modules/common/utils"
	"adstudio-server/modules/formats"
)

// GenerationClient - the three provider operations the studio drives
type GenerationClient interface {
	GenerateImageAd(ctx context.Context, image model.UploadedImage, prompt, adCopy string) (*model.GeneratedAdResult, error)
	GenerateVideoAd(ctx context.Context, image model.UploadedImage, prompt, adCopy string) (*model.GeneratedAdResult, error)
	SuggestSlogans(ctx context.Context, image model.UploadedImage) ([]string, error)
}

// Ledger - balance operations the workflow needs
type Ledger interface {
	GetBalance(ctx context.Context) int
	Deduct(ctx context.Context, amount int) (int, error)
}

// CreationStore - persistence operations the workflow needs
type CreationStore interface {
	Add(ctx context.Context, candidate model.Creation) (model.Creation, error)
	Get(ctx context.Context, id string) (model.Creation, bool, error)
}

// ProgressSink - receives generation lifecycle events; may be nil
type ProgressSink interface {
	GenerationStatus(requestID, formatID, phase, message string)
}

type Service struct {
	gen      GenerationClient
	ledger   Ledger
	store    CreationStore
	progress ProgressSink

	mu               sync.Mutex
	uploadedImage    *model.UploadedImage
	selectedFormat   model.AdFormat
	customPrompt     string
	adCopy           string
	result           *model.GeneratedAdResult
	suggestedSlogans []string
	isLoading        bool
	isSuggesting     bool
	errMsg           string
}

func NewService(gen GenerationClient, ledger Ledger, store CreationStore, progress ProgressSink) *Service {
	defaultFormat := formats.Default()
	return &Service{
		gen:            gen,
		ledger:         ledger,
		store:          store,
		progress:       progress,
		selectedFormat: defaultFormat,
		customPrompt:   defaultFormat.Prompt,
	}
}

// UploadImage - store a validated product photo and reset stale outputs
func (s *Service) UploadImage(image model.UploadedImage) error {
	if !utils.IsImageMime(image.MimeType) {
		return apperr.NewValidation("Please upload a valid image file (PNG, JPG, etc.).")
	}
	if image.Base64 == "" {
		return apperr.NewValidation("The uploaded file is empty.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.uploadedImage = &image
	s.suggestedSlogans = nil
	s.result = nil
	s.errMsg = ""
	return nil
}

// RemoveImage - drop the current upload
func (s *Service) RemoveImage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uploadedImage = nil
	s.suggestedSlogans = nil
}

// SelectFormat - switch formats. The custom prompt resets to the new
// format's template and the ad copy clears: a fresh start per format.
func (s *Service) SelectFormat(formatID string) error {
	format, ok := formats.Lookup(formatID)
	if !ok {
		return apperr.NewValidation("Unknown ad format: %s", formatID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedFormat = format
	s.customPrompt = format.Prompt
	s.adCopy = ""
	return nil
}

// SetPrompt - overwrite the customized prompt
func (s *Service) SetPrompt(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customPrompt = prompt
}

// SetAdCopy - overwrite the slogan text to embed in the ad
func (s *Service) SetAdCopy(adCopy string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adCopy = adCopy
}

// Generate - run one generation workflow:
// validate → generate → deduct → persist. Only one workflow may be in
// flight; the loading flag is checked and set under the same lock, so
// concurrent submissions are rejected structurally rather than by UI wiring.
func (s *Service) Generate(ctx context.Context) (model.Creation, error) {
	s.mu.Lock()

	if s.isLoading {
		s.mu.Unlock()
		return model.Creation{}, apperr.NewValidation("A generation is already in progress. Please wait for it to finish.")
	}

	if s.uploadedImage == nil {
		err := apperr.NewValidation("Please upload an image and select an ad format.")
		s.errMsg = err.Error()
		s.mu.Unlock()
		return model.Creation{}, err
	}

	format := s.selectedFormat
	image := *s.uploadedImage
	prompt := s.customPrompt
	adCopy := s.adCopy

	// Pre-check the balance before any network call so a generation that
	// cannot be paid for is never attempted
	if balance := s.ledger.GetBalance(ctx); balance < format.Cost {
		insufficientErr := &apperr.InsufficientCreditsError{Needed: format.Cost, Have: balance}
		s.errMsg = insufficientErr.Error()
		s.mu.Unlock()
		return model.Creation{}, insufficientErr
	}

	s.isLoading = true
	s.errMsg = ""
	s.result = nil
	s.mu.Unlock()

	requestID := uuid.New().String()
	s.publish(requestID, format.ID, PhaseValidating, "")
	log.Printf("🚀 Generation started: request=%s format=%s cost=%d", requestID, format.ID, format.Cost)

	s.publish(requestID, format.ID, PhaseGenerating, "")
	var result *model.GeneratedAdResult
	var err error
	if format.OutputType == model.OutputTypeVideo {
		result, err = s.gen.GenerateVideoAd(ctx, image, prompt, adCopy)
	} else {
		result, err = s.gen.GenerateImageAd(ctx, image, prompt, adCopy)
	}
	if err != nil {
		// No ledger or store mutation has happened yet
		return model.Creation{}, s.fail(requestID, format.ID, err)
	}

	// Deduction must complete before the creation is persisted, so the
	// gallery never holds more entries than successful deductions
	s.publish(requestID, format.ID, PhaseDeducting, "")
	if _, err := s.ledger.Deduct(ctx, format.Cost); err != nil {
		// The generated artifact is discarded: payment gates persistence
		return model.Creation{}, s.fail(requestID, format.ID, err)
	}

	s.publish(requestID, format.ID, PhasePersisting, "")
	candidate := model.Creation{
		GeneratedAdResult: *result,
		OriginalImage:     image,
		Prompt:            prompt,
		AdCopy:            adCopy,
		AdFormatID:        format.ID,
		AdFormatTitle:     format.Title,
	}
	creation, err := s.store.Add(ctx, candidate)
	if err != nil {
		return model.Creation{}, s.fail(requestID, format.ID, err)
	}

	s.mu.Lock()
	s.result = result
	s.isLoading = false
	s.mu.Unlock()

	s.publish(requestID, format.ID, PhaseCompleted, "")
	log.Printf("✅ Generation completed: request=%s creation=%s", requestID, creation.ID)
	return creation, nil
}

// SuggestSlogans - independent sub-flow proposing ad copy from the image.
// Never touches the ledger or the store; shares the single error slot.
func (s *Service) SuggestSlogans(ctx context.Context) ([]string, error) {
	s.mu.Lock()

	if s.uploadedImage == nil {
		err := apperr.NewValidation("Please upload an image before requesting slogans.")
		s.errMsg = err.Error()
		s.mu.Unlock()
		return nil, err
	}
	if s.isSuggesting {
		s.mu.Unlock()
		return nil, apperr.NewValidation("Slogan suggestion is already in progress.")
	}

	image := *s.uploadedImage
	s.isSuggesting = true
	s.errMsg = ""
	s.suggestedSlogans = nil
	s.mu.Unlock()

	slogans, err := s.gen.SuggestSlogans(ctx, image)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.isSuggesting = false
	if err != nil {
		s.errMsg = err.Error()
		return nil, err
	}

	s.suggestedSlogans = slogans
	return slogans, nil
}

// Remix - re-seed the working state from a past creation without deducting
// or persisting anything. Unknown format ids fall back to the default.
func (s *Service) Remix(ctx context.Context, creationID string) (Snapshot, error) {
	creation, found, err := s.store.Get(ctx, creationID)
	if err != nil {
		return Snapshot{}, err
	}
	if !found {
		return Snapshot{}, apperr.NewValidation("Creation not found: %s", creationID)
	}

	format := formats.ByID(creation.AdFormatID)

	s.mu.Lock()
	defer s.mu.Unlock()

	image := creation.OriginalImage
	s.uploadedImage = &image
	s.selectedFormat = format
	s.customPrompt = creation.Prompt
	s.adCopy = creation.AdCopy
	s.result = nil
	s.suggestedSlogans = nil
	s.errMsg = ""

	log.Printf("🔁 Remixed creation %s into working state (format: %s)", creationID, format.ID)
	return s.snapshotLocked(), nil
}

// State - snapshot of the working state
func (s *Service) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		SelectedFormat:   s.selectedFormat,
		CustomPrompt:     s.customPrompt,
		AdCopy:           s.adCopy,
		SuggestedSlogans: s.suggestedSlogans,
		IsLoading:        s.isLoading,
		IsSuggesting:     s.isSuggesting,
		Error:            s.errMsg,
	}
	if s.uploadedImage != nil {
		image := *s.uploadedImage
		snapshot.UploadedImage = &image
	}
	if s.result != nil {
		result := *s.result
		snapshot.Result = &result
	}
	return snapshot
}

// fail - record the failure in the error slot, clear the loading flag and
// publish the terminal event
func (s *Service) fail(requestID, formatID string, err error) error {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.isLoading = false
	s.mu.Unlock()

	s.publish(requestID, formatID, PhaseFailed, err.Error())
	log.Printf("❌ Generation failed: request=%s: %v", requestID, err)
	return err
}

func (s *Service) publish(requestID, formatID, phase, message string) {
	if s.progress == nil {
		return
	}
	s.progress.GenerationStatus(requestID, formatID, phase, message)
}
