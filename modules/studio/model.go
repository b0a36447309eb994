package studio

import "adstudio-server/modules/common/model"

// UploadRequest - POST /api/studio/upload
type UploadRequest struct {
	Image model.UploadedImage `json:"image"`
}

// SelectFormatRequest - POST /api/studio/format
type SelectFormatRequest struct {
	FormatID string `json:"formatId"`
}

// PromptRequest - POST /api/studio/prompt
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// AdCopyRequest - POST /api/studio/copy
type AdCopyRequest struct {
	AdCopy string `json:"adCopy"`
}

// RemixRequest - POST /api/studio/remix
type RemixRequest struct {
	CreationID string `json:"creationId"`
}

// Snapshot - the controller's working state as rendered by the client
type Snapshot struct {
	UploadedImage    *model.UploadedImage     `json:"uploadedImage,omitempty"`
	SelectedFormat   model.AdFormat           `json:"selectedFormat"`
	CustomPrompt     string                   `json:"customPrompt"`
	AdCopy           string                   `json:"adCopy"`
	Result           *model.GeneratedAdResult `json:"result,omitempty"`
	SuggestedSlogans []string                 `json:"suggestedSlogans"`
	IsLoading        bool                     `json:"isLoading"`
	IsSuggesting     bool                     `json:"isSuggesting"`
	Error            string                   `json:"error,omitempty"`
}

// Generation workflow phases published to the progress hub
const (
	PhaseValidating = "validating"
	PhaseGenerating = "generating"
	PhaseDeducting  = "deducting"
	PhasePersisting = "persisting"
	PhaseCompleted  = "completed"
	PhaseFailed     = "failed"
)
