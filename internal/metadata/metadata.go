// Package metadata resolves the creation timestamp of a media file.
//
// Resolution order: embedded metadata first (EXIF for images, including HEIC
// containers; optionally the mvhd creation time for MP4/MOV), then the file's
// modification time. [Resolver.Resolve] never fails outward — every error on
// the metadata path falls through to the modification time, and a file whose
// stat also fails resolves to the zero time with SourceUnknown, which callers
// treat as a per-file skip.
package metadata

import (
	"time"

	"github.com/djherbis/times"
	"github.com/spf13/afero"

	"github.com/backmassage/photosort/internal/media"
)

// ExifDateLayout is the timestamp layout used by the EXIF DateTimeOriginal tag.
const ExifDateLayout = "2006:01:02 15:04:05"

// Source identifies where a resolved timestamp came from.
type Source int

const (
	SourceUnknown Source = iota
	SourceExif           // EXIF DateTimeOriginal tag.
	SourceVideo          // MP4/MOV mvhd creation time.
	SourceModTime        // Filesystem modification time.
)

// String returns a short label for verbose logging.
func (s Source) String() string {
	switch s {
	case SourceExif:
		return "exif"
	case SourceVideo:
		return "mvhd"
	case SourceModTime:
		return "mtime"
	default:
		return "unknown"
	}
}

// Resolver resolves creation timestamps against a filesystem.
type Resolver struct {
	fs         afero.Fs
	videoDates bool
}

// NewResolver returns a Resolver reading from fs. When videoDates is true,
// MP4/MOV containers are probed for their mvhd creation time before falling
// back to the modification time.
func NewResolver(fs afero.Fs, videoDates bool) *Resolver {
	return &Resolver{fs: fs, videoDates: videoDates}
}

// Resolve returns the creation timestamp for path and the source it came
// from. Metadata is always attempted first for every recognized image,
// HEIC included, regardless of whether conversion is enabled; any failure
// (unreadable file, no metadata, missing tag, parse error) falls back to the
// modification time.
func (r *Resolver) Resolve(path string) (time.Time, Source) {
	switch media.KindOf(path) {
	case media.KindImage:
		if t, err := r.imageDate(path); err == nil {
			return t, SourceExif
		}
	case media.KindVideo:
		if r.videoDates {
			if t, err := r.videoDate(path); err == nil {
				return t, SourceVideo
			}
		}
	}

	if t, err := r.modTime(path); err == nil {
		return t, SourceModTime
	}
	return time.Time{}, SourceUnknown
}

// imageDate dispatches to the HEIC container parser or the plain EXIF reader.
func (r *Resolver) imageDate(path string) (time.Time, error) {
	if media.IsHeic(path) {
		return r.heicDate(path)
	}
	return r.exifDate(path)
}

// modTime returns the file's last-modification timestamp. times.Get needs
// the platform stat structure behind FileInfo.Sys; memory-backed filesystems
// expose none, so those use the portable ModTime instead.
func (r *Resolver) modTime(path string) (time.Time, error) {
	fi, err := r.fs.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	if fi.Sys() == nil {
		return fi.ModTime(), nil
	}
	return times.Get(fi).ModTime(), nil
}
