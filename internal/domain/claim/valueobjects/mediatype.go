package valueobjects

import (
	"fmt"
	"strings"
)

// MediaType classifies claim attachments.
type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

const (
	MaxPhotoBytes = 2 << 20  // 2 MiB
	MaxVideoBytes = 10 << 20 // 10 MiB
)

var photoFormats = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
	"heic": true,
}

var videoFormats = map[string]bool{
	"mp4": true,
	"mov": true,
}

func NewMediaType(s string) (MediaType, error) {
	switch MediaType(s) {
	case MediaTypePhoto:
		return MediaTypePhoto, nil
	case MediaTypeVideo:
		return MediaTypeVideo, nil
	default:
		return "", fmt.Errorf("invalid media type: %s", s)
	}
}

func (m MediaType) String() string {
	return string(m)
}

// MaxBytes returns the upload size ceiling for this media type.
func (m MediaType) MaxBytes() int64 {
	if m == MediaTypeVideo {
		return MaxVideoBytes
	}
	return MaxPhotoBytes
}

// AllowsFormat checks the file extension (without dot) against the allow list
// for this media type.
func (m MediaType) AllowsFormat(format string) bool {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if m == MediaTypeVideo {
		return videoFormats[f]
	}
	return photoFormats[f]
}
