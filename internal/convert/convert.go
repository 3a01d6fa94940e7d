// Package convert provides the HEIC→JPEG conversion capability. The
// capability is injected into the pipeline as an interface so the organizer
// degrades cleanly when decoding is unavailable (conversion becomes a
// preflight error instead of a per-file crash).
package convert

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/spf13/afero"
	_ "github.com/vegidio/heif-go" // Register the HEIF decoder with image.Decode.
)

// jpegQuality matches the encoder default used for still exports.
const jpegQuality = 92

// ErrUnavailable is returned by the null converter and reported as a
// preflight failure when --heic-to-jpeg is requested without decode support.
var ErrUnavailable = errors.New("HEIC decoding is not available in this build")

// Converter re-encodes a HEIC source as a JPEG at the destination.
type Converter interface {
	// Convert decodes src and writes it as JPEG to dst. On failure no
	// destination file is left behind and the source is untouched.
	Convert(fs afero.Fs, src, dst string) error
	// Available reports whether conversion can be performed at all.
	Available() bool
}

// Heif converts via the registered HEIF image decoder.
type Heif struct{}

// Available always reports true: the decoder is compiled in.
func (Heif) Available() bool { return true }

// Convert decodes src (HEIC) and encodes it as JPEG at dst. The destination
// is only created after a successful decode; an encode failure removes the
// partial file.
func (Heif) Convert(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	img, _, err := image.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		out.Close()
		_ = fs.Remove(dst)
		return fmt.Errorf("encode %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		_ = fs.Remove(dst)
		return fmt.Errorf("close %s: %w", dst, err)
	}
	return nil
}

// Unavailable is the null converter used when decode support is absent.
type Unavailable struct{}

// Available always reports false.
func (Unavailable) Available() bool { return false }

// Convert always fails with [ErrUnavailable].
func (Unavailable) Convert(afero.Fs, string, string) error { return ErrUnavailable }
