// Package formats holds the static ad-format catalog. Entries are immutable
// and looked up by id; unknown ids fall back to the first entry.
package formats

import "adstudio-server/modules/common/model"

var catalog = []model.AdFormat{
	{
		ID:          "social-media",
		Title:       "Social Media Post",
		Description: "A vibrant, eye-catching square ad for social feeds.",
		Prompt:      "Create a vibrant, eye-catching social media advertisement featuring this product. Place the product in a bright, modern setting with bold complementary colors and a clean composition that works as a square post.",
		Icon:        "📱",
		OutputType:  model.OutputTypeImage,
		Cost:        5,
	},
	{
		ID:          "studio-shot",
		Title:       "Studio Product Shot",
		Description: "A premium studio photograph on a seamless backdrop.",
		Prompt:      "Transform this product photo into a premium professional studio shot. Use dramatic softbox lighting, a seamless neutral backdrop, subtle reflections, and sharp focus that makes the product the hero of the frame.",
		Icon:        "📸",
		OutputType:  model.OutputTypeImage,
		Cost:        5,
	},
	{
		ID:          "lifestyle",
		Title:       "Lifestyle Scene",
		Description: "The product in use in an aspirational real-world scene.",
		Prompt:      "Place this product naturally into an aspirational lifestyle scene with people enjoying it. Warm natural light, authentic atmosphere, and a composition that tells a story about the product in everyday life.",
		Icon:        "🌅",
		OutputType:  model.OutputTypeImage,
		Cost:        5,
	},
	{
		ID:          "minimalist",
		Title:       "Minimalist Ad",
		Description: "A clean, elegant ad with generous negative space.",
		Prompt:      "Create a minimalist advertisement for this product. Lots of negative space, a restrained monochrome palette, elegant typography placement, and a single strong focal point.",
		Icon:        "⬜",
		OutputType:  model.OutputTypeImage,
		Cost:        5,
	},
	{
		ID:          "retro",
		Title:       "Retro Poster",
		Description: "A nostalgic vintage poster treatment.",
		Prompt:      "Redesign this product photo as a retro advertising poster from the 1970s. Grainy film texture, sun-faded colors, vintage typography styling, and a nostalgic mood.",
		Icon:        "📻",
		OutputType:  model.OutputTypeImage,
		Cost:        5,
	},
	{
		ID:          "video-ad",
		Title:       "Video Ad",
		Description: "A short cinematic video spot built from the product photo.",
		Prompt:      "Create a short, cinematic advertisement video showcasing this product. Smooth camera movement around the product, dynamic lighting changes, and a polished commercial look.",
		Icon:        "🎬",
		OutputType:  model.OutputTypeVideo,
		Cost:        10,
	},
}

// All - the full catalog, copied so callers cannot mutate it
func All() []model.AdFormat {
	out := make([]model.AdFormat, len(catalog))
	copy(out, catalog)
	return out
}

// Default - the catalog's first entry
func Default() model.AdFormat {
	return catalog[0]
}

// Lookup - strict lookup by id
func Lookup(id string) (model.AdFormat, bool) {
	for _, f := range catalog {
		if f.ID == id {
			return f, true
		}
	}
	return model.AdFormat{}, false
}

// ByID - lookup with fallback to the default entry, used when remixing a
// creation whose format no longer exists
func ByID(id string) model.AdFormat {
	if f, ok := Lookup(id); ok {
		return f
	}
	return Default()
}
