// Package check provides the --check diagnostics: a report of which
// metadata readers and conversion capabilities this build carries.
package check

import (
	"strings"

	"github.com/backmassage/photosort/internal/convert"
	"github.com/backmassage/photosort/internal/media"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck prints the capability report: metadata readers, HEIC conversion
// support, and the recognized extension sets. Informational only — it does
// not stop on a missing capability.
func RunCheck(conv convert.Converter, log Logger) {
	log.Info("=== Capability Check ===")

	log.Success("EXIF reader: available (JPEG, TIFF)")
	log.Success("HEIC metadata: available (ISO BMFF EXIF extraction)")
	log.Success("Video dates: available with --video-dates (MP4/MOV mvhd)")

	if conv.Available() {
		log.Success("HEIC to JPEG conversion: available")
	} else {
		log.Warn("HEIC to JPEG conversion: unavailable (--heic-to-jpeg will fail)")
	}

	log.Info("Image extensions: %s", strings.Join(media.ImageExtensions(), " "))
	log.Info("Video extensions: %s", strings.Join(media.VideoExtensions(), " "))
}
