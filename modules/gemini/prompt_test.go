package gemini

import (
	"strings"
	"testing"
)

func TestBuildImagePrompt(t *testing.T) {
	base := "Create a vibrant ad."

	if got := buildImagePrompt(base, ""); got != base {
		t.Fatalf("empty copy must leave the prompt untouched, got %q", got)
	}

	got := buildImagePrompt(base, "Buy one, get one")
	if !strings.HasPrefix(got, base) {
		t.Fatalf("composite prompt must start with the base, got %q", got)
	}
	if !strings.Contains(got, `"Buy one, get one"`) {
		t.Fatalf("ad copy must be embedded verbatim, got %q", got)
	}
	if !strings.Contains(got, "incorporate the following text") {
		t.Fatalf("missing embed instruction: %q", got)
	}
}

func TestBuildVideoPrompt(t *testing.T) {
	base := "Create a cinematic spot."

	if got := buildVideoPrompt(base, ""); got != base {
		t.Fatalf("empty copy must leave the prompt untouched, got %q", got)
	}

	got := buildVideoPrompt(base, "Limited time")
	if !strings.Contains(got, "Overlay the following text") {
		t.Fatalf("missing overlay instruction: %q", got)
	}
	if !strings.Contains(got, `"Limited time"`) {
		t.Fatalf("ad copy must be embedded verbatim, got %q", got)
	}
}

func TestParseSlogans(t *testing.T) {
	slogans := parseSlogans(`{"slogans":["Fresh.","Bold.","Yours."]}`)
	if len(slogans) != 3 || slogans[0] != "Fresh." {
		t.Fatalf("unexpected slogans: %v", slogans)
	}

	// Non-conforming payloads degrade to an empty list, never an error
	for _, raw := range []string{"", "not json", `{"other":1}`, `{"slogans":"oops"}`} {
		if got := parseSlogans(raw); len(got) != 0 {
			t.Fatalf("payload %q must yield no slogans, got %v", raw, got)
		}
	}
}
