package domain

import "fmt"

// Mode selects which remote operation a cycle performs. Exactly one mode is
// active at a time; it is only changed by explicit user selection.
type Mode string

const (
	ModeEdit  Mode = "edit"
	ModeVideo Mode = "video"
)

// ParseMode validates a wire value coming from the mode radio controls.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeEdit:
		return ModeEdit, nil
	case ModeVideo:
		return ModeVideo, nil
	default:
		return "", fmt.Errorf("unsupported mode %q", raw)
	}
}

// ActionLabel is the text shown on the action trigger for the mode.
func (m Mode) ActionLabel() string {
	if m == ModeVideo {
		return "Generate Video"
	}
	return "Edit Image"
}

// DownloadLabel is the text shown on the download trigger for the mode.
func (m Mode) DownloadLabel() string {
	if m == ModeVideo {
		return "Download Video"
	}
	return "Download Image"
}

// DownloadFilename is the suggested filename for a downloaded result.
func (m Mode) DownloadFilename() string {
	if m == ModeVideo {
		return "generated-video.mp4"
	}
	return "edited-image.png"
}
