package utils

import "testing"

func TestIsImageMime(t *testing.T) {
	for mime, want := range map[string]bool{
		"image/png":       true,
		"image/jpeg":      true,
		"image/webp":      true,
		"application/pdf": false,
		"video/mp4":       false,
		"":                false,
	} {
		if got := IsImageMime(mime); got != want {
			t.Fatalf("IsImageMime(%q) = %v, want %v", mime, got, want)
		}
	}
}

func TestDataURIRoundTrip(t *testing.T) {
	uri := DataURI("image/png", []byte("payload"))
	if uri != "data:image/png;base64,cGF5bG9hZA==" {
		t.Fatalf("unexpected data URI %q", uri)
	}

	mimeType, data, err := ParseDataURI(uri)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if mimeType != "image/png" || string(data) != "payload" {
		t.Fatalf("round trip mismatch: %q %q", mimeType, data)
	}
}

func TestParseDataURIRejectsGarbage(t *testing.T) {
	for _, uri := range []string{"", "http://example.com/a.png", "data:image/png;base64,%%%", "data:image/png,raw"} {
		if _, _, err := ParseDataURI(uri); err == nil {
			t.Fatalf("expected error for %q", uri)
		}
	}
}
