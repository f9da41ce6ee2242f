package prompt

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
)

// Preset is a ready-made instruction the user can copy into the prompt field.
type Preset struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

var editPresets = []Preset{
	{Label: "retro style", Text: "Transform this photo into a retro 80s synthwave poster with neon colors"},
	{Label: "watercolor", Text: "Repaint this image as a soft watercolor illustration"},
	{Label: "remove background", Text: "Remove the background and replace it with a clean white studio backdrop"},
	{Label: "golden hour", Text: "Relight the scene as if it were taken during golden hour"},
}

var videoPresets = []Preset{
	{Label: "cinematic pan", Text: "Animate this image with a slow cinematic camera pan from left to right"},
	{Label: "gentle zoom", Text: "Bring the scene to life with a gentle zoom and subtle natural motion"},
	{Label: "time lapse", Text: "Turn this image into a time lapse with moving clouds and shifting light"},
	{Label: "rain", Text: "Add soft falling rain and ripples to the scene"},
}

// ForMode returns the example prompts for the given mode with title-cased
// labels. The returned slice is a copy; callers may not mutate the presets.
func ForMode(mode domain.Mode) []Preset {
	source := editPresets
	if mode == domain.ModeVideo {
		source = videoPresets
	}
	titler := cases.Title(language.Und)
	out := make([]Preset, len(source))
	for i, p := range source {
		out[i] = Preset{
			Label: titler.String(strings.TrimSpace(p.Label)),
			Text:  p.Text,
		}
	}
	return out
}
