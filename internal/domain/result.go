package domain

// ResultKind tags the outcome of one orchestration cycle.
type ResultKind string

const (
	ResultImage   ResultKind = "image"
	ResultVideo   ResultKind = "video"
	ResultEmpty   ResultKind = "empty"
	ResultFailure ResultKind = "failure"
)

// ResultPart is one ordered fragment of an edit response: either inline
// binary media or a text annotation, never both.
type ResultPart struct {
	Data     []byte
	MIMEType string
	Text     string
}

// IsMedia reports whether the part carries renderable bytes.
func (p ResultPart) IsMedia() bool {
	return len(p.Data) > 0
}

// OperationResult is the single live outcome of a cycle. At most one is
// displayed at a time; a new cycle discards the previous one along with its
// stored resource.
type OperationResult struct {
	ID      string
	Kind    ResultKind
	Mode    Mode
	Parts   []ResultPart
	Message string
}

// Downloadable reports whether the download affordance applies: true if and
// only if the result is a concrete image or video.
func (r *OperationResult) Downloadable() bool {
	return r != nil && (r.Kind == ResultImage || r.Kind == ResultVideo)
}

// Media returns the primary downloadable part. For edits that is the last
// inline image in part order (the capture target); for video the single
// fetched clip.
func (r *OperationResult) Media() (ResultPart, bool) {
	if !r.Downloadable() {
		return ResultPart{}, false
	}
	var found ResultPart
	ok := false
	for _, p := range r.Parts {
		if p.IsMedia() {
			found = p
			ok = true
		}
	}
	return found, ok
}
