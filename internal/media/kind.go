// Package media classifies files by extension into the recognized image and
// video sets. Both discovery and date resolution key off this classification.
package media

import (
	"path/filepath"
	"sort"
	"strings"
)

// Kind is the extension-derived classification of a file.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindImage
	KindVideo
)

// Recognized image extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".tiff": true,
	".bmp":  true,
	".heic": true,
}

// Recognized video extensions (lowercase, with leading dot).
var videoExtensions = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
	".mkv": true,
	".mts": true,
	".wmv": true,
}

// KindOf returns the classification for path based on its lowercase extension.
func KindOf(path string) Kind {
	ext := Ext(path)
	switch {
	case imageExtensions[ext]:
		return KindImage
	case videoExtensions[ext]:
		return KindVideo
	default:
		return KindUnrecognized
	}
}

// Ext returns the lowercase extension of path, including the leading dot.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsHeic reports whether path has a .heic extension (any case).
func IsHeic(path string) bool {
	return Ext(path) == ".heic"
}

// ImageExtensions returns the recognized image extensions, for capability
// reporting.
func ImageExtensions() []string {
	return sortedKeys(imageExtensions)
}

// VideoExtensions returns the recognized video extensions, for capability
// reporting.
func VideoExtensions() []string {
	return sortedKeys(videoExtensions)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
