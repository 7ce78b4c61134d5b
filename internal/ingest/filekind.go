package ingest

import (
	"path/filepath"
	"strings"
)

// FileKind classifies an uploaded file.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindVideo
	KindSubtitle
)

func (k FileKind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindSubtitle:
		return "subtitle"
	default:
		return "unknown"
	}
}

var (
	videoExtensions    = map[string]struct{}{".mkv": {}, ".mp4": {}, ".webm": {}, ".avi": {}}
	subtitleExtensions = map[string]struct{}{".srt": {}, ".ass": {}}
)

// Classify decides the kind of a file from its name and declared MIME type.
// Video wins when both a video MIME type and a subtitle extension are present.
func Classify(name, mimeType string) FileKind {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := videoExtensions[ext]; ok {
		return KindVideo
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "video/") {
		return KindVideo
	}
	if _, ok := subtitleExtensions[ext]; ok {
		return KindSubtitle
	}
	return KindUnknown
}

func isASS(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".ass")
}
