// Package gemini wraps the generative-AI provider behind three single-shot
// operations: image ad generation, video ad generation (long-running, polled)
// and slogan suggestion. No operation retries on its own; failures surface as
// typed GenerationErrors for the caller to report.
package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"

	"adstudio-server/modules/common/apperr"
	"adstudio-server/modules/common/config"
	"adstudio-server/modules/common/model"
	"adstudio-server/modules/common/utils"
)

type Service struct {
	genaiClient *genai.Client
	httpClient  *http.Client
	apiKey      string
}

// NewService - initialize the genai client once for the process
func NewService(ctx context.Context) (*Service, error) {
	cfg := config.GetConfig()

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Genai client: %w", err)
	}

	log.Println("✅ [Gemini] Service initialized")
	return &Service{
		genaiClient: genaiClient,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		apiKey: cfg.GeminiAPIKey,
	}, nil
}

// GenerateImageAd - produce a still advertisement from the product photo
func (s *Service) GenerateImageAd(ctx context.Context, image model.UploadedImage, prompt, adCopy string) (*model.GeneratedAdResult, error) {
	cfg := config.GetConfig()
	finalPrompt := buildImagePrompt(prompt, adCopy)

	imageData, err := base64.StdEncoding.DecodeString(image.Base64)
	if err != nil {
		return nil, apperr.NewValidation("The uploaded image could not be decoded.")
	}

	log.Printf("🎨 [Gemini] Generating image ad - model: %s, prompt: %s",
		cfg.GeminiImageModel, truncateString(finalPrompt, 60))

	content := &genai.Content{
		Parts: []*genai.Part{
			genai.NewPartFromBytes(imageData, image.MimeType),
			genai.NewPartFromText(finalPrompt),
		},
	}

	result, err := s.genaiClient.Models.GenerateContent(
		ctx,
		cfg.GeminiImageModel,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		},
	)
	if err != nil {
		log.Printf("❌ [Gemini] Image generation failed: %v", err)
		return nil, apperr.NewGeneration(err, "Failed to generate ad image. Please try again.")
	}

	var generatedImage, generatedText string
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				generatedText = part.Text
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				generatedImage = utils.DataURI(part.InlineData.MIMEType, part.InlineData.Data)
			}
		}
	}

	if generatedImage == "" {
		return nil, apperr.NewGeneration(nil, "The model did not return an image. It may have been blocked due to safety policies.")
	}

	log.Printf("✅ [Gemini] Image ad generated: %d chars", len(generatedImage))
	return &model.GeneratedAdResult{
		GeneratedImage: generatedImage,
		GeneratedText:  generatedText,
	}, nil
}

// GenerateVideoAd - submit a long-running video job, poll it to completion on
// a fixed interval, then download the finished clip. The loop is bounded by
// VideoPollMaxAttempts and by ctx, so an abandoned request tears down cleanly.
func (s *Service) GenerateVideoAd(ctx context.Context, image model.UploadedImage, prompt, adCopy string) (*model.GeneratedAdResult, error) {
	cfg := config.GetConfig()
	finalPrompt := buildVideoPrompt(prompt, adCopy)

	imageData, err := base64.StdEncoding.DecodeString(image.Base64)
	if err != nil {
		return nil, apperr.NewValidation("The uploaded image could not be decoded.")
	}

	log.Printf("🎬 [Gemini] Generating video ad - model: %s, prompt: %s",
		cfg.VeoModel, truncateString(finalPrompt, 60))

	operation, err := s.genaiClient.Models.GenerateVideos(
		ctx,
		cfg.VeoModel,
		finalPrompt,
		&genai.Image{
			ImageBytes: imageData,
			MIMEType:   image.MimeType,
		},
		&genai.GenerateVideosConfig{
			NumberOfVideos: 1,
		},
	)
	if err != nil {
		log.Printf("❌ [Gemini] Video job submission failed: %v", err)
		return nil, apperr.NewGeneration(err, "Failed to generate ad video. This can take a few minutes. Please try again.")
	}

	for attempt := 0; !operation.Done; attempt++ {
		if attempt >= cfg.VideoPollMaxAttempts {
			return nil, apperr.NewGeneration(nil,
				"Video generation did not finish within %s. Please try again.",
				time.Duration(cfg.VideoPollMaxAttempts)*cfg.VideoPollInterval)
		}

		select {
		case <-ctx.Done():
			return nil, apperr.NewGeneration(ctx.Err(), "Video generation was cancelled.")
		case <-time.After(cfg.VideoPollInterval):
		}

		log.Printf("⏳ [Gemini] Polling video job (attempt %d/%d)", attempt+1, cfg.VideoPollMaxAttempts)
		operation, err = s.genaiClient.Operations.GetVideosOperation(ctx, operation, nil)
		if err != nil {
			log.Printf("❌ [Gemini] Video job poll failed: %v", err)
			return nil, apperr.NewGeneration(err, "Failed to generate ad video. This can take a few minutes. Please try again.")
		}
	}

	if operation.Response == nil || len(operation.Response.GeneratedVideos) == 0 ||
		operation.Response.GeneratedVideos[0].Video == nil {
		return nil, apperr.NewGeneration(nil, "Video generation completed, but no download link was found.")
	}

	video := operation.Response.GeneratedVideos[0].Video
	videoData := video.VideoBytes
	if len(videoData) == 0 {
		videoData, err = s.downloadVideo(ctx, video.URI)
		if err != nil {
			return nil, err
		}
	}

	mimeType := video.MIMEType
	if mimeType == "" {
		mimeType = "video/mp4"
	}

	log.Printf("✅ [Gemini] Video ad generated: %d bytes", len(videoData))
	return &model.GeneratedAdResult{
		GeneratedVideoURL: utils.DataURI(mimeType, videoData),
	}, nil
}

// SuggestSlogans - structured-output request for 5 short ad slogans
func (s *Service) SuggestSlogans(ctx context.Context, image model.UploadedImage) ([]string, error) {
	cfg := config.GetConfig()

	imageData, err := base64.StdEncoding.DecodeString(image.Base64)
	if err != nil {
		return nil, apperr.NewValidation("The uploaded image could not be decoded.")
	}

	log.Printf("💡 [Gemini] Suggesting slogans - model: %s", cfg.GeminiTextModel)

	content := &genai.Content{
		Parts: []*genai.Part{
			genai.NewPartFromBytes(imageData, image.MimeType),
			genai.NewPartFromText(slogansPrompt),
		},
	}

	result, err := s.genaiClient.Models.GenerateContent(
		ctx,
		cfg.GeminiTextModel,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"slogans": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
				},
				Required: []string{"slogans"},
			},
		},
	)
	if err != nil {
		log.Printf("❌ [Gemini] Slogan suggestion failed: %v", err)
		return nil, apperr.NewGeneration(err, "Failed to suggest ad copy. The model may be unable to process the request.")
	}

	slogans := parseSlogans(result.Text())
	log.Printf("✅ [Gemini] Suggested %d slogans", len(slogans))
	return slogans, nil
}

// downloadVideo - fetch the finished clip; the download URI requires the API
// key as a query parameter
func (s *Service) downloadVideo(ctx context.Context, downloadLink string) ([]byte, error) {
	if downloadLink == "" {
		return nil, apperr.NewGeneration(nil, "Video generation completed, but no download link was found.")
	}

	separator := "?"
	if strings.Contains(downloadLink, "?") {
		separator = "&"
	}
	fullURL := downloadLink + separator + "key=" + url.QueryEscape(s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, apperr.NewGeneration(err, "Failed to download the generated video.")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ [Gemini] Video download failed: %v", err)
		return nil, apperr.NewGeneration(err, "Failed to download the generated video.")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ [Gemini] Video download failed - status %d: %s", resp.StatusCode, truncateString(string(body), 200))
		return nil, apperr.NewGeneration(nil, "Failed to download video: %s", resp.Status)
	}

	videoData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.NewGeneration(err, "Failed to download the generated video.")
	}

	return videoData, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
