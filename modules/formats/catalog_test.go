package formats

import (
	"testing"

	"adstudio-server/modules/common/model"
)

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("catalog must not be empty")
	}

	seen := map[string]bool{}
	for _, f := range all {
		if f.ID == "" || f.Title == "" || f.Prompt == "" {
			t.Fatalf("format %+v is missing required fields", f)
		}
		if f.Cost < 0 {
			t.Fatalf("format %s has negative cost %d", f.ID, f.Cost)
		}
		if f.OutputType != model.OutputTypeImage && f.OutputType != model.OutputTypeVideo {
			t.Fatalf("format %s has unknown output type %q", f.ID, f.OutputType)
		}
		if seen[f.ID] {
			t.Fatalf("duplicate format id %s", f.ID)
		}
		seen[f.ID] = true
	}
}

func TestLookupAndFallback(t *testing.T) {
	def := Default()

	if f, ok := Lookup(def.ID); !ok || f.ID != def.ID {
		t.Fatalf("lookup of default id failed: %v %v", f, ok)
	}
	if _, ok := Lookup("no-such-format"); ok {
		t.Fatal("lookup of unknown id must fail")
	}

	// Remix path: unknown ids fall back to the first catalog entry
	if f := ByID("no-such-format"); f.ID != def.ID {
		t.Fatalf("expected fallback to %s, got %s", def.ID, f.ID)
	}
}

func TestAllReturnsACopy(t *testing.T) {
	first := All()
	first[0].Title = "mutated"

	if All()[0].Title == "mutated" {
		t.Fatal("mutating the returned slice must not affect the catalog")
	}
}

func TestVideoFormatExists(t *testing.T) {
	for _, f := range All() {
		if f.OutputType == model.OutputTypeVideo {
			return
		}
	}
	t.Fatal("catalog must contain at least one video format")
}
