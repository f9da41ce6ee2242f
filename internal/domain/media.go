package domain

import (
	"fmt"
	"strings"
)

// EncodedMedia is a base64 payload plus its MIME type, as produced by the
// browser's FileReader data URL. It is immutable once parsed; a new upload
// replaces it wholesale.
type EncodedMedia struct {
	Data     string
	MIMEType string
}

// ParseDataURL extracts the MIME type and base64 payload from a data URL of
// the form "data:<mime>;base64,<data>". The MIME type is the substring
// between the first ':' and the first ';'; the data is everything after the
// first comma. A URL missing either segment is rejected.
func ParseDataURL(raw string) (EncodedMedia, error) {
	header, data, ok := strings.Cut(raw, ",")
	if !ok {
		return EncodedMedia{}, fmt.Errorf("%w: missing comma separator", ErrInvalidDataURL)
	}
	colon := strings.Index(header, ":")
	semi := strings.Index(header, ";")
	if colon < 0 || semi < 0 || semi <= colon+1 {
		return EncodedMedia{}, fmt.Errorf("%w: missing mime type segment", ErrInvalidDataURL)
	}
	return EncodedMedia{
		Data:     data,
		MIMEType: header[colon+1 : semi],
	}, nil
}

// IsZero reports whether no media has been supplied.
func (m EncodedMedia) IsZero() bool {
	return m.Data == "" && m.MIMEType == ""
}
