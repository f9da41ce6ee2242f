package prompt

import (
	"testing"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
)

func TestForModeReturnsDistinctSets(t *testing.T) {
	edit := ForMode(domain.ModeEdit)
	video := ForMode(domain.ModeVideo)
	if len(edit) == 0 || len(video) == 0 {
		t.Fatalf("both modes must offer presets")
	}
	if edit[0].Text == video[0].Text {
		t.Fatalf("edit and video presets should differ")
	}
	for _, p := range edit {
		if p.Label == "" || p.Text == "" {
			t.Fatalf("preset with empty field: %+v", p)
		}
	}
}

func TestForModeTitleCasesLabels(t *testing.T) {
	presets := ForMode(domain.ModeEdit)
	for _, p := range presets {
		if p.Label[0] >= 'a' && p.Label[0] <= 'z' {
			t.Fatalf("label %q should be title cased", p.Label)
		}
	}
}

func TestForModeReturnsCopies(t *testing.T) {
	first := ForMode(domain.ModeVideo)
	first[0].Text = "mutated"
	second := ForMode(domain.ModeVideo)
	if second[0].Text == "mutated" {
		t.Fatalf("ForMode must not expose shared state")
	}
}
