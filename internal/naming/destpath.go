// Package naming builds collision-free destination paths inside the
// year/month tree.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/backmassage/photosort/internal/media"
)

// DestPath returns the destination path for a file with creation timestamp t:
// destDir/YYYY/MM/<filename>. When convertHeic is true and the file is HEIC,
// the extension is replaced with .jpg (stem preserved).
func DestPath(destDir string, t time.Time, filename string, convertHeic bool) string {
	name := filename
	if convertHeic && media.IsHeic(filename) {
		name = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
	}
	return filepath.Join(destDir, t.Format("2006"), t.Format("01"), name)
}

// EnsureUnique probes fs for path and, on collision, appends _1, _2, …
// before the extension until an unclaimed path is found. The check and the
// later write are not atomic; a single organizer instance per destination
// tree is assumed.
func EnsureUnique(fs afero.Fs, path string) (string, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return "", err
	}
	if !exists {
		return path, nil
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		exists, err := afero.Exists(fs, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}
