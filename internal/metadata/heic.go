package metadata

import (
	"fmt"
	"strings"
	"time"

	"github.com/dsoprea/go-exif/v2"
	heicexif "github.com/dsoprea/go-heic-exif-extractor"
	"github.com/spf13/afero"
)

// heicDate reads the DateTimeOriginal tag from a HEIC container. goexif does
// not understand the ISO BMFF wrapping, so the EXIF blob is located with the
// HEIC media parser and decoded flat.
func (r *Resolver) heicDate(path string) (time.Time, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return time.Time{}, err
	}

	mc, err := heicexif.NewHeicExifMediaParser().ParseBytes(data)
	if err != nil {
		return time.Time{}, err
	}
	_, rawExif, err := mc.Exif()
	if err != nil {
		return time.Time{}, err
	}

	tags, err := exif.GetFlatExifData(rawExif)
	if err != nil {
		return time.Time{}, err
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag.TagName) != "DateTimeOriginal" {
			continue
		}
		t, err := time.ParseInLocation(ExifDateLayout, tag.FormattedFirst, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse DateTimeOriginal %q: %w", tag.FormattedFirst, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("no DateTimeOriginal tag in %s", path)
}
