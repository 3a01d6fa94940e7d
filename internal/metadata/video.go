package metadata

import (
	"fmt"
	"time"

	mp4 "github.com/abema/go-mp4"

	"github.com/backmassage/photosort/internal/media"
)

// ISO BMFF timestamps count seconds from 1904-01-01 rather than the Unix epoch.
const appleEpochOffset = 2082844800

// videoDate reads the mvhd creation time from an ISO BMFF container
// (.mp4, .mov). Other video formats have no comparable cheap-to-read
// timestamp and resolve via the modification-time fallback.
func (r *Resolver) videoDate(path string) (time.Time, error) {
	switch media.Ext(path) {
	case ".mp4", ".mov":
		// ISO BMFF containers.
	default:
		return time.Time{}, fmt.Errorf("no container timestamp for %s files", media.Ext(path))
	}

	f, err := r.fs.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	boxes, err := mp4.ExtractBoxesWithPayload(f, nil, []mp4.BoxPath{
		{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()},
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("read MP4 structure: %w", err)
	}

	for _, box := range boxes {
		mvhd, ok := box.Payload.(*mp4.Mvhd)
		if !ok {
			continue
		}
		creation := mvhd.GetCreationTime()
		if creation == 0 {
			return time.Time{}, fmt.Errorf("mvhd creation time is zero")
		}
		t := time.Unix(int64(creation)-appleEpochOffset, 0).UTC()
		if t.Year() < 1970 {
			return time.Time{}, fmt.Errorf("mvhd creation time predates Unix epoch")
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("mvhd box not found in %s", path)
}
