package metadata

import (
	"fmt"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifDate reads the DateTimeOriginal tag from an image with embedded EXIF
// data (JPEG, TIFF). PNG/GIF/BMP carry no EXIF segment, so for those the
// decode step fails and the caller falls back to the modification time.
func (r *Resolver) exifDate(path string) (time.Time, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, err
	}
	value, err := tag.StringVal()
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.ParseInLocation(ExifDateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse DateTimeOriginal %q: %w", value, err)
	}
	return t, nil
}
