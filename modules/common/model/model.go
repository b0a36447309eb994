package model

// OutputType - what kind of artifact a format produces
type OutputType string

const (
	OutputTypeImage OutputType = "image"
	OutputTypeVideo OutputType = "video"
)

// UploadedImage - base64 payload + MIME type of a user-provided product photo
type UploadedImage struct {
	Base64   string `json:"base64"`
	MimeType string `json:"mimeType"`
}

// AdFormat - a catalog entry controlling prompt template, output kind and cost
type AdFormat struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Prompt      string     `json:"prompt"`
	Icon        string     `json:"icon"`
	OutputType  OutputType `json:"outputType"`
	Cost        int        `json:"cost"`
}

// GeneratedAdResult - output of one generation call. Exactly one of
// GeneratedImage / GeneratedVideoURL is populated, keyed by the invoking
// format's OutputType.
type GeneratedAdResult struct {
	GeneratedImage    string `json:"generatedImage,omitempty"`
	GeneratedText     string `json:"generatedText,omitempty"`
	GeneratedVideoURL string `json:"generatedVideoUrl,omitempty"`
}

// Creation - a persisted generation result together with its inputs.
// Immutable once created; identity is ID.
type Creation struct {
	GeneratedAdResult

	ID            string        `json:"id"`
	Timestamp     int64         `json:"timestamp"`
	OriginalImage UploadedImage `json:"originalImage"`
	Prompt        string        `json:"prompt"`
	AdCopy        string        `json:"adCopy"`
	AdFormatID    string        `json:"adFormatId"`
	AdFormatTitle string        `json:"adFormatTitle"`

	// WebP preview of the generated image for cheap gallery rendering
	ThumbnailWebP string `json:"thumbnailWebp,omitempty"`
}
