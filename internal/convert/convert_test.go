package convert

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/spf13/afero"
)

// writeTestImage encodes a small solid-color PNG to fs at path. image.Decode
// sniffs content rather than extension, so this stands in for a decodable
// still without needing a real HEIC fixture.
func writeTestImage(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestHeif_ConvertProducesDecodableJpeg(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTestImage(t, fs, "src/c.heic")

	if err := (Heif{}).Convert(fs, "src/c.heic", "dest/c.jpg"); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	data, err := afero.ReadFile(fs, "dest/c.jpg")
	if err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("destination is not a valid JPEG: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Errorf("decoded bounds = %v, want 8x8", got)
	}

	if exists, _ := afero.Exists(fs, "src/c.heic"); !exists {
		t.Error("source removed by conversion")
	}
}

func TestHeif_ConvertFailureLeavesNoDestination(t *testing.T) {
	fs := afero.NewMemMapFs()
	original := []byte("not an image at all")
	if err := afero.WriteFile(fs, "src/broken.heic", original, 0o644); err != nil {
		t.Fatal(err)
	}

	err := (Heif{}).Convert(fs, "src/broken.heic", "dest/broken.jpg")
	if err == nil {
		t.Fatal("Convert of garbage input succeeded, want error")
	}

	if exists, _ := afero.Exists(fs, "dest/broken.jpg"); exists {
		t.Error("destination file created despite failed conversion")
	}
	got, err := afero.ReadFile(fs, "src/broken.heic")
	if err != nil || !bytes.Equal(got, original) {
		t.Errorf("source modified by failed conversion: %q, %v", got, err)
	}
}

func TestHeif_ConvertMissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := (Heif{}).Convert(fs, "src/none.heic", "dest/none.jpg"); err == nil {
		t.Fatal("Convert of missing source succeeded, want error")
	}
}

func TestUnavailable(t *testing.T) {
	var c Converter = Unavailable{}
	if c.Available() {
		t.Error("Unavailable.Available() = true")
	}
	err := c.Convert(afero.NewMemMapFs(), "a.heic", "a.jpg")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Convert error = %v, want ErrUnavailable", err)
	}
}

func TestHeif_Available(t *testing.T) {
	if !(Heif{}).Available() {
		t.Error("Heif.Available() = false")
	}
}
