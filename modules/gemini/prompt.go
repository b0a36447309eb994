package gemini

import (
	"encoding/json"
	"fmt"
)

const slogansPrompt = "Based on the provided image of a product, generate 5 short, catchy, and effective advertising slogans or headlines. The slogans should be diverse in tone, from playful to sophisticated. Return the response as a JSON array of strings."

// buildImagePrompt - append the verbatim ad-copy instruction when copy is present
func buildImagePrompt(basePrompt, adCopy string) string {
	if adCopy == "" {
		return basePrompt
	}
	return fmt.Sprintf("%s\n\nPlease prominently and creatively incorporate the following text into the ad: %q", basePrompt, adCopy)
}

// buildVideoPrompt - same idea, but the copy is overlaid during the video
func buildVideoPrompt(basePrompt, adCopy string) string {
	if adCopy == "" {
		return basePrompt
	}
	return fmt.Sprintf("%s\n\nOverlay the following text creatively during the video: %q", basePrompt, adCopy)
}

// parseSlogans - decode the schema-constrained response. A payload that does
// not conform yields an empty list rather than an error.
func parseSlogans(raw string) []string {
	var payload struct {
		Slogans []string `json:"slogans"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return []string{}
	}
	if payload.Slogans == nil {
		return []string{}
	}
	return payload.Slogans
}
